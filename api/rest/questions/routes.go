package questions

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, log Lister) {
	router.GET("/questions", ListHandler(log))
}
