package http

import (
	"errors"
	"net/http"

	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/core/domain/model/shop"
	"campusfood/internal/core/domain/model/student"
	"campusfood/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the HTTP surface exposes.
type Handlers struct {
	Register             commands.RegisterCommandHandler
	UpdateStudentProfile commands.UpdateStudentProfileCommandHandler
	UpdateShopProfile    commands.UpdateShopProfileCommandHandler
	MenuItems            commands.MenuItemCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	TransitionOrder      commands.TransitionOrderStatusCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler

	Login             queries.LoginQueryHandler
	ListShops         queries.ListShopsQueryHandler
	GetShopMenu       queries.GetShopMenuQueryHandler
	QuoteCart         queries.QuoteCartQueryHandler
	GetStudentProfile queries.GetStudentProfileQueryHandler
	GetShopProfile    queries.GetShopProfileQueryHandler
	ListOwnMenu       queries.ListOwnMenuQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	h      Handlers
	tokens ports.TokenIssuer
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, tokens ports.TokenIssuer) *Server {
	return &Server{h: handlers, tokens: tokens}
}

// RegisterStudent handles POST /auth/students/register.
func (s *Server) RegisterStudent(ctx echo.Context) error {
	var req RegisterStudentRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	email, emailErr := kernel.NewEmail(req.Email)
	rollNumber, rollErr := student.ParseRollNumber(req.RollNumber)
	phone, phoneErr := kernel.NewPhone(req.Phone)
	if err := errors.Join(emailErr, rollErr, phoneErr); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterStudentCommand(id, email, req.Password, rollNumber, student.Profile{
		Name:   req.Name,
		Hostel: student.Hostel(req.Hostel),
		Phone:  phone,
		Year:   req.Year,
	})
	if err != nil {
		return err
	}
	if err = s.h.Register.HandleStudent(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithToken(ctx, http.StatusCreated, id, kernel.RoleStudent)
}

// RegisterShop handles POST /auth/shops/register.
func (s *Server) RegisterShop(ctx echo.Context) error {
	var req RegisterShopRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	email, emailErr := kernel.NewEmail(req.Email)
	phone, phoneErr := kernel.NewPhone(req.Phone)
	policy, policyErr := req.DeliveryPolicyFields.toPolicy()
	if err := errors.Join(emailErr, phoneErr, policyErr); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterShopCommand(id, email, req.Password, shop.Profile{
		OwnerName: req.Name,
		Phone:     phone,
		ShopName:  req.ShopName,
		Location:  shop.Location(req.Location),
		Type:      shop.Type(req.ShopType),
		ImageURL:  req.ImageURL,
	}, policy)
	if err != nil {
		return err
	}
	if err = s.h.Register.HandleShop(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithToken(ctx, http.StatusCreated, id, kernel.RoleShop)
}

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	role, err := kernel.RoleFromString(req.Role)
	if err != nil {
		return err
	}
	query, err := queries.NewLoginQuery(req.Email, req.Password, role)
	if err != nil {
		return err
	}

	resp, err := s.h.Login.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, AuthResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
		ID:        resp.ID.Bytes(),
		Role:      resp.Role.String(),
	})
}

func (s *Server) respondWithToken(ctx echo.Context, status int, id kernel.UUID, role kernel.Role) error {
	actor, err := kernel.NewActor(id, role)
	if err != nil {
		return err
	}
	token, expiresAt, err := s.tokens.Issue(actor)
	if err != nil {
		return err
	}
	return ctx.JSON(status, AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		ID:        id.Bytes(),
		Role:      role.String(),
	})
}

// ListShops handles GET /shops.
func (s *Server) ListShops(ctx echo.Context) error {
	shops, err := s.h.ListShops.Handle(ctx.Request().Context(), queries.NewListShopsQuery())
	if err != nil {
		return err
	}

	response := make([]ShopSummary, len(shops))
	for i, sh := range shops {
		response[i] = toShopSummary(sh)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetShopMenu handles GET /shops/{shopId}/menu.
func (s *Server) GetShopMenu(ctx echo.Context, shopID uuid.UUID) error {
	id, err := toKernelUUID("shopId", shopID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetShopMenuQuery(id)
	if err != nil {
		return err
	}

	m, err := s.h.GetShopMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ShopMenu{
		ShopID:   m.ShopID.Bytes(),
		ShopName: m.ShopName,
		IsOpen:   m.IsOpen,
		Items:    toMenuItems(m.Items),
	})
}

// QuoteCart handles POST /shops/{shopId}/quote.
func (s *Server) QuoteCart(ctx echo.Context, shopID uuid.UUID) error {
	var req QuoteRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	id, err := toKernelUUID("shopId", shopID)
	if err != nil {
		return err
	}
	lines, err := toCartLines(req.Items)
	if err != nil {
		return err
	}
	query, err := queries.NewQuoteCartQuery(id, lines)
	if err != nil {
		return err
	}

	q, err := s.h.QuoteCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Quote{
		ShopID:             q.ShopID.Bytes(),
		Items:              toOrderLines(q.Lines),
		Subtotal:           q.Subtotal.StringFixed(2),
		DeliveryFee:        q.DeliveryFee.StringFixed(2),
		TotalAmount:        q.Total.StringFixed(2),
		MinimumOrderAmount: q.MinimumOrder.StringFixed(2),
		MeetsMinimumOrder:  q.MeetsMinimumOrder,
	})
}

// GetStudentProfile handles GET /students/me.
func (s *Server) GetStudentProfile(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetStudentProfileQuery(actor)
	if err != nil {
		return err
	}

	p, err := s.h.GetStudentProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, StudentProfile{
		ID:         p.ID.Bytes(),
		Email:      p.Email,
		RollNumber: string(p.RollNumber),
		Name:       p.Name,
		Hostel:     string(p.Hostel),
		Phone:      p.Phone,
		Year:       p.Year,
	})
}

// UpdateStudentProfile handles PUT /students/me and responds with the stored profile.
func (s *Server) UpdateStudentProfile(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var req StudentProfileRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	phone, err := kernel.NewPhone(req.Phone)
	if err != nil {
		return err
	}
	cmd, err := commands.NewUpdateStudentProfileCommand(actor, student.Profile{
		Name:   req.Name,
		Hostel: student.Hostel(req.Hostel),
		Phone:  phone,
		Year:   req.Year,
	})
	if err != nil {
		return err
	}
	if err = s.h.UpdateStudentProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.GetStudentProfile(ctx)
}

// GetShopProfile handles GET /shopkeepers/me.
func (s *Server) GetShopProfile(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetShopProfileQuery(actor)
	if err != nil {
		return err
	}

	p, err := s.h.GetShopProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ShopProfile{
		ShopSummary: toShopSummary(p.ShopSummaryResponse),
		Email:       p.Email,
		Name:        p.OwnerName,
		Phone:       p.Phone,
		Verified:    p.Verified,
		Active:      p.Active,
	})
}

// UpdateShopProfile handles PUT /shopkeepers/me and responds with the stored profile.
func (s *Server) UpdateShopProfile(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var req ShopProfileRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	phone, phoneErr := kernel.NewPhone(req.Phone)
	policy, policyErr := req.DeliveryPolicyFields.toPolicy()
	if err = errors.Join(phoneErr, policyErr); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateShopProfileCommand(actor, shop.Profile{
		OwnerName: req.Name,
		Phone:     phone,
		ShopName:  req.ShopName,
		Location:  shop.Location(req.Location),
		Type:      shop.Type(req.ShopType),
		ImageURL:  req.ImageURL,
	}, *req.IsOpen, policy)
	if err != nil {
		return err
	}
	if err = s.h.UpdateShopProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.GetShopProfile(ctx)
}

// ListOwnMenu handles GET /shopkeepers/menu.
func (s *Server) ListOwnMenu(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewListOwnMenuQuery(actor)
	if err != nil {
		return err
	}

	items, err := s.h.ListOwnMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toMenuItems(items))
}

// AddMenuItem handles POST /shopkeepers/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var req MenuItemRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}
	details, err := req.toDetails()
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(actor, id, details)
	if err != nil {
		return err
	}
	if err = s.h.MenuItems.HandleAdd(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	available := true
	if req.IsAvailable != nil && !*req.IsAvailable {
		available = false
		update, updateErr := commands.NewUpdateMenuItemCommand(actor, id, details, available)
		if updateErr != nil {
			return updateErr
		}
		if err = s.h.MenuItems.HandleUpdate(ctx.Request().Context(), update); err != nil {
			return err
		}
	}

	return ctx.JSON(http.StatusCreated, toMenuItem(id, actor.ID(), details, available))
}

// UpdateMenuItem handles PUT /shopkeepers/menu/{itemId}. An omitted isAvailable
// makes the item available.
func (s *Server) UpdateMenuItem(ctx echo.Context, itemID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var req MenuItemRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	id, err := toKernelUUID("itemId", itemID)
	if err != nil {
		return err
	}
	details, err := req.toDetails()
	if err != nil {
		return err
	}
	available := req.IsAvailable == nil || *req.IsAvailable

	cmd, err := commands.NewUpdateMenuItemCommand(actor, id, details, available)
	if err != nil {
		return err
	}
	if err = s.h.MenuItems.HandleUpdate(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toMenuItem(id, actor.ID(), details, available))
}

// DeleteMenuItem handles DELETE /shopkeepers/menu/{itemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, itemID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID("itemId", itemID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMenuItemCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.h.MenuItems.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	status := order.Unknown
	if params.Status != nil {
		if status, err = order.StatusFromString(*params.Status); err != nil {
			return err
		}
	}
	query, err := queries.NewListOrdersQuery(actor, status)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var req PlaceOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	shopID, err := toKernelUUID("shopId", req.ShopID)
	if err != nil {
		return err
	}
	lines, err := toCartLines(req.Items)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, actor, shopID, lines, req.DeliveryInstructions)
	if err != nil {
		return err
	}
	if err = s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusCreated, actor, orderID)
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	return s.respondWithOrder(ctx, http.StatusOK, actor, id)
}

// UpdateOrderStatus handles PUT /orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var req StatusUpdateRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}
	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(actor, id, target, req.RejectionReason)
	if err != nil {
		return err
	}
	if err = s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, actor, id)
}

// CancelOrder handles PUT /orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID uuid.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actor, id)
	if err != nil {
		return err
	}
	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(ctx, http.StatusOK, actor, id)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, actor kernel.Actor, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(o))
}
