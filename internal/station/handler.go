package station

import (
	"net/http"

	"hapsay-service/helper"

	"github.com/gin-gonic/gin"
)

type StationHandler struct {
	stationService StationService
}

func NewStationHandler(stationService StationService) *StationHandler {
	return &StationHandler{
		stationService: stationService,
	}
}

func (h *StationHandler) GetStations(c *gin.Context) {

	stations, err := h.stationService.GetStations(c)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, stations, len(stations))

}

func (h *StationHandler) GetStationByID(c *gin.Context) {

	station, err := h.stationService.GetStationByID(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", station)

}

func (h *StationHandler) CreateStation(c *gin.Context) {

	var req CreateStationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	station, err := h.stationService.CreateStation(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "", station)

}

func (h *StationHandler) UpdateStation(c *gin.Context) {

	var req UpdateStationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	station, err := h.stationService.UpdateStation(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Station updated successfully", station)

}

func (h *StationHandler) DeleteStation(c *gin.Context) {

	station, err := h.stationService.DeleteStation(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Station deleted successfully", station)

}
