package sessionapi

import (
	"net/http"

	routeapi "github.com/beka-birhanu/aisle/api/route"
	"github.com/beka-birhanu/aisle/api/status"
	"github.com/beka-birhanu/aisle/service"
	"github.com/beka-birhanu/aisle/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller handles shopping session requests.
type Controller struct {
	sessions i.SessionManager
}

// NewController creates a session Controller.
func NewController(sm i.SessionManager) *Controller {
	return &Controller{sessions: sm}
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/sessions", c.start)
}

// RegisterProtected registers routes that need the session token.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions/:id")
	sessions.Use(ownsSession)
	{
		sessions.GET("", c.get)
		sessions.POST("/next", c.advance(1))
		sessions.POST("/prev", c.advance(-1))
		sessions.GET("/route", c.route)
	}
}

// ownsSession aborts unless the token was issued for the session in the path.
func ownsSession(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}
	claims, _ := ctx.Get(ContextSessionClaims)
	m, ok := claims.(map[string]interface{})
	if !ok || m[service.SessionClaim] != id.String() {
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}
	ctx.Set("sessionID", id)
	ctx.Next()
}

func sessionID(ctx *gin.Context) uuid.UUID {
	return ctx.MustGet("sessionID").(uuid.UUID)
}

func (c *Controller) start(ctx *gin.Context) {
	var request StartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, token, err := c.sessions.Start(ctx.Request.Context(), routeapi.ToItems(request.Items))
	if err != nil {
		ctx.JSON(status.Of(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &StartResponse{ID: s.ID.String(), Token: token})
}

func (c *Controller) get(ctx *gin.Context) {
	s, err := c.sessions.Get(ctx.Request.Context(), sessionID(ctx))
	if err != nil {
		ctx.JSON(status.Of(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newSessionResponse(s))
}

func (c *Controller) advance(step int) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		s, err := c.sessions.Advance(ctx.Request.Context(), sessionID(ctx), step)
		if err != nil {
			ctx.JSON(status.Of(err), gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, newSessionResponse(s))
	}
}

func (c *Controller) route(ctx *gin.Context) {
	res, err := c.sessions.Route(ctx.Request.Context(), sessionID(ctx))
	if err != nil {
		ctx.JSON(status.Of(err), &routeapi.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, routeapi.NewRouteResponse(res))
}
