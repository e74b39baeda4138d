package queries

import (
	"context"
	"database/sql"
	"time"

	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderLineResponse struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	Amount     decimal.Decimal
}

// OrderResponse is an order as its student or shop sees it. Student contact fields
// are what the shop needs for delivery.
type OrderResponse struct {
	ID                   kernel.UUID
	StudentID            kernel.UUID
	StudentName          string
	StudentHostel        string
	StudentPhone         string
	ShopID               kernel.UUID
	ShopName             string
	Lines                []OrderLineResponse
	Subtotal             decimal.Decimal
	DeliveryFee          decimal.Decimal
	Total                decimal.Decimal
	PaymentMethod        string
	Status               order.Status
	DeliveryInstructions string
	RejectionReason      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

const selectOrders = `
	SELECT
		o.id,
		o.student_id,
		st.name,
		st.hostel,
		st.phone,
		o.shop_id,
		sh.shop_name,
		o.subtotal,
		o.delivery_fee,
		o.total,
		o.payment_method,
		o.status,
		o.delivery_instructions,
		o.rejection_reason,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN students st ON st.id = o.student_id
	LEFT JOIN shops sh ON sh.id = o.shop_id`

// readOrders runs an orders query built on selectOrders and attaches the lines.
func readOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			resp                       OrderResponse
			id, studentID, shopID      uuid.UUID
			studentName, hostel, phone sql.NullString
			shopName                   sql.NullString
			status                     string
		)
		err = rows.Scan(
			&id,
			&studentID,
			&studentName,
			&hostel,
			&phone,
			&shopID,
			&shopName,
			&resp.Subtotal,
			&resp.DeliveryFee,
			&resp.Total,
			&resp.PaymentMethod,
			&status,
			&resp.DeliveryInstructions,
			&resp.RejectionReason,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.StudentID, err = kernel.UUIDFromBytes(studentID[:]); err != nil {
			return nil, err
		}
		if resp.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}
		if resp.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		resp.StudentName = studentName.String
		resp.StudentHostel = hostel.String
		resp.StudentPhone = phone.String
		resp.ShopName = shopName.String
		resp.CreatedAt = resp.CreatedAt.UTC()
		resp.UpdatedAt = resp.UpdatedAt.UTC()
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachLines(ctx, db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func attachLines(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	byID := make(map[kernel.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		byID[o.ID] = i
		orders[i].Lines = make([]OrderLineResponse, 0)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, menu_item_id, name, quantity, unit_price
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line            OrderLineResponse
			orderID, itemID uuid.UUID
		)
		if err = rows.Scan(&orderID, &itemID, &line.Name, &line.Quantity, &line.UnitPrice); err != nil {
			return err
		}
		if line.MenuItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}
		line.Amount = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))

		owner, ownerErr := kernel.UUIDFromBytes(orderID[:])
		if ownerErr != nil {
			return ownerErr
		}
		if i, ok := byID[owner]; ok {
			orders[i].Lines = append(orders[i].Lines, line)
		}
	}
	return rows.Err()
}
