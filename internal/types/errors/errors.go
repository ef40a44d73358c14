package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal       = errors.New("database internal error")
	ErrNotFound         = errors.New("record not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIsExpired = errors.New("session is expired")
	ErrNoAuth           = errors.New("authorization required")
	ErrBadPassword      = errors.New("bad password")
	ErrBadID            = errors.New("bad id")

	ErrMissingCartSession = errors.New("missing cart session header")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductNotFound    = errors.New("product not found")
	ErrItemNotInCart      = errors.New("item is not in the cart")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
)

// ErrorServer тело ответа с ошибкой, клиент читает поле detail
type ErrorServer struct {
	Detail string `json:"detail"`
}

func (e *ErrorServer) Error() string {
	return e.Detail
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Detail: "success",
		}
	}

	return ErrorServer{
		Detail: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}

// ServerError ответ бэкенда со статусом не из 2xx.
// Detail пустой, если сервер не прислал поле detail.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server responded with status %d", e.Status)
	}

	return fmt.Sprintf("server responded with status %d: %s", e.Status, e.Detail)
}

// Kind классифицирует неудачную операцию контейнера
type Kind string

const (
	// KindTransport - ответа нет: сеть, DNS, таймаут, битое тело
	KindTransport Kind = "transport"
	// KindServer - сервер ответил ошибкой (например, нет на складе)
	KindServer Kind = "server"
	// KindPrecondition - операция отклонена до сетевого вызова
	KindPrecondition Kind = "precondition"
	// KindCanceled - вызывающий сам отменил контекст, тост не нужен
	KindCanceled Kind = "canceled"
)

// OpError результат неудачной операции контейнера корзины или избранного.
// Message - текст, который показывается пользователю.
type OpError struct {
	Op      string
	Kind    Kind
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed [%s]: %s", e.Op, e.Kind, e.Message)
	}

	return fmt.Sprintf("%s failed [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError строит OpError по ошибке транспорта.
// Для ServerError с detail сообщение берется из detail, иначе fallback.
func NewOpError(op string, err error, fallback string) *OpError {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		msg := fallback
		if srvErr.Detail != "" {
			msg = srvErr.Detail
		}

		return &OpError{Op: op, Kind: KindServer, Message: msg, Err: err}
	}

	if errors.Is(err, context.Canceled) {
		return &OpError{Op: op, Kind: KindCanceled, Message: MsgCanceled, Err: err}
	}

	return &OpError{Op: op, Kind: KindTransport, Message: MsgNetworkFailure, Err: err}
}

// MsgNetworkFailure текст для пользователя, когда сервер недоступен
const MsgNetworkFailure = "Something went wrong. Please check your connection and try again."

const MsgCanceled = "Request canceled."

// IsKind проверяет, что err - OpError заданного вида
func IsKind(err error, kind Kind) bool {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind == kind
	}

	return false
}
