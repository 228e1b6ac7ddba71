package routeapi

import (
	"net/http"

	"github.com/beka-birhanu/aisle/api/status"
	dmn "github.com/beka-birhanu/aisle/domain"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/gin-gonic/gin"
)

// Controller handles route requests.
type Controller struct {
	routes i.RouteComputer
}

// NewController creates a route Controller.
func NewController(rc i.RouteComputer) *Controller {
	return &Controller{routes: rc}
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	routes := route.Group("/routes")
	{
		routes.POST("", c.compute)
		routes.GET("/layout.svg", c.layout)
	}
}

// RegisterProtected registers privileged routes.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {}

func (c *Controller) compute(ctx *gin.Context) {
	var request RouteRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
		return
	}

	res, err := c.routes.Compute(ctx.Request.Context(), dmn.RouteRequest{
		Items:     ToItems(request.Items),
		Collected: request.CollectedCount,
	})
	if err != nil {
		ctx.JSON(status.Of(err), &ErrorResponse{
			Error:          err.Error(),
			CollectedCount: request.CollectedCount,
		})
		return
	}

	ctx.JSON(http.StatusOK, NewRouteResponse(res))
}

func (c *Controller) layout(ctx *gin.Context) {
	svg, err := c.routes.Layout()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
