package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type adviceRequest struct {
	Message string `json:"message"`
}

type adviceResponse struct {
	Reply string `json:"reply"`
}

func handleAdvice(w http.ResponseWriter, r *http.Request) {
	if adviser == nil {
		respondError(w, http.StatusServiceUnavailable, "advisory service not initialized")
		return
	}

	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be JSON with a message field")
		return
	}

	// Advise never fails: service errors come back as readable reply text.
	reply := adviser.Advise(r.Context(), req.Message)
	respondJSON(w, http.StatusOK, adviceResponse{Reply: reply})
}

// handleAdviceSocket serves the websocket advisory channel. Each inbound
// message is one independent advisory call; the connection carries no
// conversation state and nothing is replayed between messages.
func handleAdviceSocket(w http.ResponseWriter, r *http.Request) {
	if adviser == nil {
		respondError(w, http.StatusServiceUnavailable, "advisory service not initialized")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var req adviceRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("advice socket read failed", zap.Error(err))
			}
			return
		}

		reply := adviser.Advise(r.Context(), req.Message)
		if err := conn.WriteJSON(adviceResponse{Reply: reply}); err != nil {
			logger.Warn("advice socket write failed", zap.Error(err))
			return
		}
	}
}
