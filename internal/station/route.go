package station

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *StationHandler, mw ...gin.HandlerFunc) {
	stationGroup := r.Group("/stations", mw...)
	{
		stationGroup.GET("/getStations", handler.GetStations)
		stationGroup.GET("/:id", handler.GetStationByID)
		stationGroup.POST("/create", handler.CreateStation)
		stationGroup.PUT("/update/:id", handler.UpdateStation)
		stationGroup.DELETE("/:id", handler.DeleteStation)
	}
}
