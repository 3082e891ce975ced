package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog-service/apierror"
)

var errFileTooLarge = errors.New("uploaded file exceeds the size limit")

// respondError maps an application error onto the uniform {message} error
// body; anything unexpected becomes a 500 and gets logged.
func respondError(c *gin.Context, err error) {
	appErr := apierror.From(err)
	if appErr.Status() >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(appErr),
		)
	}
	c.JSON(appErr.Status(), gin.H{"message": appErr.Message})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
