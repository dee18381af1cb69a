package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/legendiguess/mercury-trade-bot/domain"
	"github.com/shopspring/decimal"
)

type exchangeClientService interface {
	Subscribe(channelName string, args domain.Args) error
	Unsubscribe(channelName string, args domain.Args) error
}

type tradingService interface {
	PlaceOrder(request domain.OrderRequest) error
	CancelOrder(orderID string) error
}

type orderRecordsService interface {
	GetOrderRecords() []domain.OrderRecord
}

type serverLogger interface {
	Panic(args ...interface{})
}

type Server struct {
	exchangeClient exchangeClientService
	trading        tradingService
	orderRecords   orderRecordsService
	logger         serverLogger
}

func NewServer(exchangeClient exchangeClientService, trading tradingService, orderRecords orderRecordsService, serverLogger serverLogger) *Server {
	server := Server{
		exchangeClient: exchangeClient,
		trading:        trading,
		orderRecords:   orderRecords,
		logger:         serverLogger,
	}

	go func() {
		server.logger.Panic(http.ListenAndServe(":5000", server.Routes()))
	}()

	return &server
}

func (server *Server) Routes() chi.Router {
	root := chi.NewRouter()

	root.Use(middleware.Logger)
	root.Put("/subscription", server.subscriptionUpdate)
	root.Delete("/subscription", server.subscriptionDelete)
	root.Get("/orders", server.ordersList)
	root.Post("/orders", server.orderPlace)
	root.Delete("/orders/{orderID}", server.orderCancel)

	return root
}

type subscriptionRequest struct {
	Channel string `json:"channel"`
	Symbol  string `json:"symbol"`
}

func readSubscriptionRequest(r *http.Request) (*subscriptionRequest, error) {
	d, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()

	var subscription subscriptionRequest
	if err := json.Unmarshal(d, &subscription); err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (subscription *subscriptionRequest) args() domain.Args {
	args := domain.Args{}
	if subscription.Symbol != "" {
		args["symbol"] = subscription.Symbol
	}
	return args
}

func (server *Server) subscriptionUpdate(w http.ResponseWriter, r *http.Request) {
	subscription, err := readSubscriptionRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := server.exchangeClient.Subscribe(subscription.Channel, subscription.args()); err != nil {
		writeCommandError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (server *Server) subscriptionDelete(w http.ResponseWriter, r *http.Request) {
	subscription, err := readSubscriptionRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := server.exchangeClient.Unsubscribe(subscription.Channel, subscription.args()); err != nil {
		writeCommandError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (server *Server) ordersList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(server.orderRecords.GetOrderRecords())
}

type placeOrderRequest struct {
	ClientOrderID string `json:"client_order_id"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price"`
	StopPrice     string `json:"stop_price"`
	TimeInForce   string `json:"time_in_force"`
	MinQuantity   string `json:"min_quantity"`
}

func (server *Server) orderPlace(w http.ResponseWriter, r *http.Request) {
	d, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var placeOrder placeOrderRequest
	if err := json.Unmarshal(d, &placeOrder); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request, err := placeOrder.toOrderRequest()
	if err != nil {
		writeCommandError(w, err)
		return
	}

	if err := server.trading.PlaceOrder(*request); err != nil {
		writeCommandError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"client_order_id": request.ClientOrderID})
}

func (placeOrder *placeOrderRequest) toOrderRequest() (*domain.OrderRequest, error) {
	clientOrderID := placeOrder.ClientOrderID
	if clientOrderID == "" {
		clientOrderID = domain.NewClientOrderID()
	}

	quantity, err := decimal.NewFromString(placeOrder.Quantity)
	if err != nil {
		return nil, &domain.InvalidArgumentError{Field: "quantity", Reason: "must be a decimal number"}
	}

	request := domain.OrderRequest{
		ClientOrderID: clientOrderID,
		Symbol:        placeOrder.Symbol,
		Side:          domain.OrderSide(placeOrder.Side),
		Type:          domain.OrderType(placeOrder.Type),
		Quantity:      quantity,
		TimeInForce:   domain.TimeInForce(placeOrder.TimeInForce),
	}

	if placeOrder.Price != "" {
		price, err := decimal.NewFromString(placeOrder.Price)
		if err != nil {
			return nil, &domain.InvalidArgumentError{Field: "price", Reason: "must be a decimal number"}
		}
		request.Price = &price
	}
	if placeOrder.StopPrice != "" {
		stopPrice, err := decimal.NewFromString(placeOrder.StopPrice)
		if err != nil {
			return nil, &domain.InvalidArgumentError{Field: "stop_price", Reason: "must be a decimal number"}
		}
		request.StopPrice = &stopPrice
	}
	if placeOrder.MinQuantity != "" {
		minQuantity, err := decimal.NewFromString(placeOrder.MinQuantity)
		if err != nil {
			return nil, &domain.InvalidArgumentError{Field: "min_quantity", Reason: "must be a decimal number"}
		}
		request.MinQuantity = &minQuantity
	}

	return &request, nil
}

func (server *Server) orderCancel(w http.ResponseWriter, r *http.Request) {
	if err := server.trading.CancelOrder(chi.URLParam(r, "orderID")); err != nil {
		writeCommandError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func writeCommandError(w http.ResponseWriter, err error) {
	var invalidArgument *domain.InvalidArgumentError
	if errors.As(err, &invalidArgument) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"field": invalidArgument.Field, "error": invalidArgument.Error()})
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
}
