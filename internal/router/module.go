package router

import "github.com/gin-gonic/gin"

// Module is one feature area of the API (accounts, doctors, orders...)
// that mounts its own routes, middleware included, on the shared /api
// group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
