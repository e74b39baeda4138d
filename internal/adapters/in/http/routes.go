package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of api/openapi.yaml.
type ServerInterface interface {
	RegisterStudent(ctx echo.Context) error
	RegisterShop(ctx echo.Context) error
	Login(ctx echo.Context) error

	ListShops(ctx echo.Context) error
	GetShopMenu(ctx echo.Context, shopID uuid.UUID) error
	QuoteCart(ctx echo.Context, shopID uuid.UUID) error

	GetStudentProfile(ctx echo.Context) error
	UpdateStudentProfile(ctx echo.Context) error
	GetShopProfile(ctx echo.Context) error
	UpdateShopProfile(ctx echo.Context) error

	ListOwnMenu(ctx echo.Context) error
	AddMenuItem(ctx echo.Context) error
	UpdateMenuItem(ctx echo.Context, itemID uuid.UUID) error
	DeleteMenuItem(ctx echo.Context, itemID uuid.UUID) error

	ListOrders(ctx echo.Context, params ListOrdersParams) error
	PlaceOrder(ctx echo.Context) error
	GetOrder(ctx echo.Context, orderID uuid.UUID) error
	UpdateOrderStatus(ctx echo.Context, orderID uuid.UUID) error
	CancelOrder(ctx echo.Context, orderID uuid.UUID) error
}

type ListOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterfaceWrapper converts path and query parameters before calling the server.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindUUIDParam(ctx echo.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) RegisterStudent(ctx echo.Context) error {
	return w.Handler.RegisterStudent(ctx)
}

func (w *ServerInterfaceWrapper) RegisterShop(ctx echo.Context) error {
	return w.Handler.RegisterShop(ctx)
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) ListShops(ctx echo.Context) error {
	return w.Handler.ListShops(ctx)
}

func (w *ServerInterfaceWrapper) GetShopMenu(ctx echo.Context) error {
	shopID, err := bindUUIDParam(ctx, "shopId")
	if err != nil {
		return err
	}
	return w.Handler.GetShopMenu(ctx, shopID)
}

func (w *ServerInterfaceWrapper) QuoteCart(ctx echo.Context) error {
	shopID, err := bindUUIDParam(ctx, "shopId")
	if err != nil {
		return err
	}
	return w.Handler.QuoteCart(ctx, shopID)
}

func (w *ServerInterfaceWrapper) GetStudentProfile(ctx echo.Context) error {
	return w.Handler.GetStudentProfile(ctx)
}

func (w *ServerInterfaceWrapper) UpdateStudentProfile(ctx echo.Context) error {
	return w.Handler.UpdateStudentProfile(ctx)
}

func (w *ServerInterfaceWrapper) GetShopProfile(ctx echo.Context) error {
	return w.Handler.GetShopProfile(ctx)
}

func (w *ServerInterfaceWrapper) UpdateShopProfile(ctx echo.Context) error {
	return w.Handler.UpdateShopProfile(ctx)
}

func (w *ServerInterfaceWrapper) ListOwnMenu(ctx echo.Context) error {
	return w.Handler.ListOwnMenu(ctx)
}

func (w *ServerInterfaceWrapper) AddMenuItem(ctx echo.Context) error {
	return w.Handler.AddMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := bindUUIDParam(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateMenuItem(ctx, itemID)
}

func (w *ServerInterfaceWrapper) DeleteMenuItem(ctx echo.Context) error {
	itemID, err := bindUUIDParam(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteMenuItem(ctx, itemID)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := bindUUIDParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindUUIDParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/auth/students/register", w.RegisterStudent)
	router.POST(baseURL+"/auth/shops/register", w.RegisterShop)
	router.POST(baseURL+"/auth/login", w.Login)

	router.GET(baseURL+"/shops", w.ListShops)
	router.GET(baseURL+"/shops/:shopId/menu", w.GetShopMenu)
	router.POST(baseURL+"/shops/:shopId/quote", w.QuoteCart)

	router.GET(baseURL+"/students/me", w.GetStudentProfile)
	router.PUT(baseURL+"/students/me", w.UpdateStudentProfile)
	router.GET(baseURL+"/shopkeepers/me", w.GetShopProfile)
	router.PUT(baseURL+"/shopkeepers/me", w.UpdateShopProfile)

	router.GET(baseURL+"/shopkeepers/menu", w.ListOwnMenu)
	router.POST(baseURL+"/shopkeepers/menu", w.AddMenuItem)
	router.PUT(baseURL+"/shopkeepers/menu/:itemId", w.UpdateMenuItem)
	router.DELETE(baseURL+"/shopkeepers/menu/:itemId", w.DeleteMenuItem)

	router.GET(baseURL+"/orders", w.ListOrders)
	router.POST(baseURL+"/orders", w.PlaceOrder)
	router.GET(baseURL+"/orders/:orderId", w.GetOrder)
	router.PUT(baseURL+"/orders/:orderId/status", w.UpdateOrderStatus)
	router.PUT(baseURL+"/orders/:orderId/cancel", w.CancelOrder)
}
