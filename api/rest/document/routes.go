package document

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, agreementPath string) {
	router.GET("/document", Handler(agreementPath))
}
