package services

import (
	"strconv"
	"time"

	"github.com/legendiguess/mercury-trade-bot/domain"
	"github.com/shopspring/decimal"
)

// Outbound trading channel actions.
const (
	ActionNewOrderSingle        = "NewOrderSingle"
	ActionNewOrderSingleMargin  = "NewOrderSingleMargin"
	ActionCancelOrderRequest    = "CancelOrderRequest"
	ActionOrderMassCancel       = "OrderMassCancelRequest"
	ActionOrderMassStatus       = "OrderMassStatusRequest"
	ActionPositionMarginDetails = "PositionMarginDetails"
)

const maxClientOrderIDLength = 20

const defaultCollateralCurrency = "USD"

type TradingChannel struct {
	*Channel
}

// priceRule constrains one optional decimal field of an order request.
type priceRule func(value *decimal.Decimal, field string) error

func enforcePositive(value *decimal.Decimal, field string) error {
	if value == nil || value.Sign() != 1 {
		return &domain.InvalidArgumentError{Field: field, Reason: "must be positive"}
	}
	return nil
}

func enforceNullOrZero(value *decimal.Decimal, field string) error {
	if value != nil && value.Sign() != 0 {
		return &domain.InvalidArgumentError{Field: field, Reason: "must be null or zero"}
	}
	return nil
}

// orderTypeRules is the per-order-type constraint set. One entry per
// order type keeps the (order type x field) cross product auditable in
// isolation.
type orderTypeRules struct {
	price             priceRule
	stopPrice         priceRule
	allowedTIF        []domain.TimeInForce // nil means unrestricted
	forbiddenTIF      []domain.TimeInForce
	execInstForbidden bool
}

var orderRules = map[domain.OrderType]orderTypeRules{
	domain.OrderTypeLimit: {
		price:     enforcePositive,
		stopPrice: enforceNullOrZero,
	},
	domain.OrderTypeMarket: {
		price:        enforceNullOrZero,
		stopPrice:    enforceNullOrZero,
		forbiddenTIF: []domain.TimeInForce{domain.GoodTillDate},
	},
	domain.OrderTypeStop: {
		price:             enforceNullOrZero,
		stopPrice:         enforcePositive,
		allowedTIF:        []domain.TimeInForce{domain.GoodTillCancel, domain.GoodTillDate},
		execInstForbidden: true,
	},
	domain.OrderTypeStopLimit: {
		price:             enforcePositive,
		stopPrice:         enforcePositive,
		allowedTIF:        []domain.TimeInForce{domain.GoodTillCancel, domain.GoodTillDate},
		execInstForbidden: true,
	},
}

// PlaceOrder validates the request against the per-order-type rule set
// and sends it. Validation failures are returned before anything is
// written to the connection.
func (trading *TradingChannel) PlaceOrder(request domain.OrderRequest) error {
	if len(request.ClientOrderID) > maxClientOrderIDLength {
		return &domain.InvalidArgumentError{Field: "clOrdID", Reason: "must not be longer than 20 characters"}
	}

	if request.Quantity.Sign() != 1 {
		return &domain.InvalidArgumentError{Field: "orderQty", Reason: "must be positive"}
	}

	if request.Side != domain.OrderSideBuy && request.Side != domain.OrderSideSell {
		return &domain.InvalidArgumentError{Field: "side", Reason: "must be buy or sell"}
	}

	timeInForce := request.TimeInForce
	if timeInForce == "" {
		timeInForce = domain.GoodTillCancel
	}
	switch timeInForce {
	case domain.GoodTillCancel, domain.GoodTillDate, domain.ImmediateOrCancel, domain.FillOrKill:
	default:
		return &domain.InvalidArgumentError{Field: "timeInForce", Reason: "unknown time in force"}
	}

	rules, ok := orderRules[request.Type]
	if !ok {
		return &domain.InvalidArgumentError{Field: "ordType", Reason: "unknown order type"}
	}
	if err := rules.price(request.Price, "price"); err != nil {
		return err
	}
	if err := rules.stopPrice(request.StopPrice, "stopPx"); err != nil {
		return err
	}
	if rules.allowedTIF != nil && !timeInForceIn(timeInForce, rules.allowedTIF) {
		return &domain.InvalidArgumentError{Field: "timeInForce", Reason: "not allowed for this order type"}
	}
	if timeInForceIn(timeInForce, rules.forbiddenTIF) {
		return &domain.InvalidArgumentError{Field: "timeInForce", Reason: "not allowed for this order type"}
	}
	if rules.execInstForbidden && request.ExecInst != nil {
		return &domain.InvalidArgumentError{Field: "execInst", Reason: "must be null"}
	}

	expireDate := 0
	if timeInForce == domain.GoodTillDate {
		if request.ExpireDate == nil || request.ExpireDate.Before(time.Now()) {
			return &domain.InvalidArgumentError{Field: "expireDate", Reason: "required and must not be in the past"}
		}
		expireDate, _ = strconv.Atoi(request.ExpireDate.Format("20060102"))
	} else if request.ExpireDate != nil {
		return &domain.InvalidArgumentError{Field: "expireDate", Reason: "must be null"}
	}

	if timeInForce == domain.ImmediateOrCancel {
		if err := enforcePositive(request.MinQuantity, "minQty"); err != nil {
			return err
		}
	}

	args := domain.Args{
		"clOrdID":     request.ClientOrderID,
		"symbol":      request.Symbol,
		"side":        string(request.Side),
		"ordType":     string(request.Type),
		"timeInForce": string(timeInForce),
		"orderQty":    request.Quantity.String(),
	}
	if request.Price != nil {
		args["price"] = request.Price.String()
	}
	if request.StopPrice != nil {
		args["stopPx"] = request.StopPrice.String()
	}
	if request.MinQuantity != nil {
		args["minQty"] = request.MinQuantity.String()
	}
	if expireDate != 0 {
		args["expireDate"] = expireDate
	}
	if request.ExecInst != nil {
		args["execInst"] = string(*request.ExecInst)
	}

	action := ActionNewOrderSingle
	if request.MarginOrder {
		action = ActionNewOrderSingleMargin

		collateralCurrency := request.CollateralCurrency
		if collateralCurrency == "" {
			collateralCurrency = defaultCollateralCurrency
		}
		leverageRatio := decimal.NewFromInt(1)
		if request.LeverageRatio != nil {
			leverageRatio = *request.LeverageRatio
		}

		args["collateralCurrency"] = collateralCurrency
		args["leverageRatio"] = leverageRatio.String()
	}

	return trading.sendMessage(action, args)
}

func timeInForceIn(timeInForce domain.TimeInForce, set []domain.TimeInForce) bool {
	for _, allowed := range set {
		if timeInForce == allowed {
			return true
		}
	}
	return false
}

func (trading *TradingChannel) CancelOrder(orderID string) error {
	if orderID == "" {
		return &domain.InvalidArgumentError{Field: "orderID", Reason: "must not be empty"}
	}
	return trading.sendMessage(ActionCancelOrderRequest, domain.Args{"orderID": orderID})
}

// CancelAllOrders cancels every live order, or only those of the given
// symbol when it is not empty.
func (trading *TradingChannel) CancelAllOrders(symbol string) error {
	args := domain.Args{}
	if symbol != "" {
		args["symbol"] = symbol
	}
	return trading.sendMessage(ActionOrderMassCancel, args)
}

func (trading *TradingChannel) ListLiveOrders() error {
	return trading.sendMessage(ActionOrderMassStatus, nil)
}

func (trading *TradingChannel) GetMarginOrderDetails(requestID string, symbol string, collateralCurrency string, side domain.OrderSide, amount decimal.Decimal, leverageRatio decimal.Decimal) error {
	if requestID == "" {
		return &domain.InvalidArgumentError{Field: "requestId", Reason: "must not be empty"}
	}
	if symbol == "" {
		return &domain.InvalidArgumentError{Field: "symbol", Reason: "must not be empty"}
	}
	if collateralCurrency == "" {
		return &domain.InvalidArgumentError{Field: "collateralCurrency", Reason: "must not be empty"}
	}
	if side != domain.OrderSideBuy && side != domain.OrderSideSell {
		return &domain.InvalidArgumentError{Field: "side", Reason: "must be buy or sell"}
	}

	return trading.sendMessage(ActionPositionMarginDetails, domain.Args{
		"requestId":          requestID,
		"symbol":             symbol,
		"collateralCurrency": collateralCurrency,
		"side":               string(side),
		"amount":             amount.String(),
		"leverageRatio":      leverageRatio.String(),
	})
}
