package server

import (
	handler "auction-house/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(dispatcher handler.DispatcherInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlation id per request
	router.Use(RequestLoggerMiddleware) // custom request logging

	rollupHandler := handler.NewRollupHandler(dispatcher)

	router.POST("/advance", rollupHandler.AdvanceHandler)
	router.GET("/inspect/*path", rollupHandler.InspectHandler)

	return router
}
