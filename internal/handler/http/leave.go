package http

import (
	"net/http"

	"github.com/worklens/hr-portal-go/internal/domain/leave"
	"github.com/worklens/hr-portal-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Balance implements LeaveHandler.
func (h *leaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.leaveService.Balance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
