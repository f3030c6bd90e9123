package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a versioned group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
