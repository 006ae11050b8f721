package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// VisitEnqueuer is the async boundary for the visit recording pipeline.
type VisitEnqueuer interface {
	Enqueue(visit ports.VisitInput)
}

// VisitHandler accepts client check-ins from the reception desk.
type VisitHandler struct {
	queue VisitEnqueuer
}

func NewVisitHandler(queue VisitEnqueuer) *VisitHandler {
	return &VisitHandler{queue: queue}
}

// Record enqueues a visit for the client; the dispatcher forwards it to the
// membership service asynchronously, in per-client order.
//
// @Summary      Record a client visit
// @Tags         clientes
// @Security     BearerAuth
// @Param        id  path  string  true  "Client ID"
// @Success      202
// @Failure      401  {object}  map[string]string
// @Router       /v1/clientes/{id}/visitas [post]
func (h *VisitHandler) Record(c echo.Context) error {
	identity, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	h.queue.Enqueue(ports.VisitInput{
		ClientID:   c.Param("id"),
		RecordedBy: identity.Name,
		Timestamp:  time.Now().UTC(),
	})

	return c.NoContent(http.StatusAccepted)
}
