package websockets

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler handles API Gateway WebSocket routes.
type Handler struct {
	connManager websockets.ConnectionManager
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager) *Handler {
	return &Handler{
		connManager: connManager,
	}
}

// HandleConnect registers a client for budget alerts.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := logger.FromContext(ctx).With().Str("connection_id", request.RequestContext.ConnectionID).Logger()
	log.Info().Msg("client connected")

	if err := h.connManager.AddConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		log.Error().Err(err).Msg("failed to save connection ID")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDisconnect forgets a client.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := logger.FromContext(ctx).With().Str("connection_id", request.RequestContext.ConnectionID).Logger()
	log.Info().Msg("client disconnected")

	if err := h.connManager.RemoveConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		log.Error().Err(err).Msg("failed to delete connection ID")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

// HandleDefault accepts client messages. Alerts only flow server to client,
// so the body is logged and dropped.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("connection_id", request.RequestContext.ConnectionID).Str("body", request.Body).Msg("received message")
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all connections by default for local development.
		return true
	},
}

// LocalHandler serves WebSocket clients of the local development server.
type LocalHandler struct {
	hub *websockets.Hub
}

// NewLocalHandler creates a LocalHandler attaching clients to hub.
func NewLocalHandler(hub *websockets.Hub) *LocalHandler {
	return &LocalHandler{hub: hub}
}

// ServeHTTP upgrades the request and keeps the client attached to the hub
// until it disconnects.
func (h *LocalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade connection")
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	log = log.With().Str("connection_id", connectionID).Logger()
	log.Info().Msg("client connected locally")

	h.hub.Attach(connectionID, conn)
	defer func() {
		h.hub.Detach(connectionID)
		log.Info().Msg("client disconnected locally")
	}()

	// The read loop only detects the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("unexpected close error")
			}
			break
		}
	}
}
