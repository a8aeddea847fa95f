package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	profiles *services.ProfileService
}

func NewUserController(profiles *services.ProfileService) *UserController {
	return &UserController{profiles: profiles}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	profile, err := ctl.profiles.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) UpsertProfile(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := ctl.profiles.UpsertProfile(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) ListRecommendations(c *gin.Context) {
	userID, ok := paramUint(c, "userId")
	if !ok {
		return
	}
	recs, err := ctl.profiles.ListRecommendations(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (ctl *UserController) MarkRecommendationRead(c *gin.Context) {
	recID, ok := paramUint(c, "recId")
	if !ok {
		return
	}
	rec, err := ctl.profiles.MarkRecommendationRead(recID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
