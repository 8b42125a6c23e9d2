package router

import "github.com/gin-gonic/gin"

// Registrar is implemented by handlers that attach their own routes
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Mount attaches every registrar under the versioned API prefix
func Mount(engine *gin.Engine, version string, registrars ...Registrar) {
	api := engine.Group("/api/" + version)
	for _, r := range registrars {
		r.RegisterRoutes(api)
	}
}
