package queries

import (
	"context"
	"sort"
	"time"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// InventoryReportQueryHandler computes the warehouse report from the
// database.
type InventoryReportQueryHandler struct {
	db *gorm.DB
}

// NewInventoryReportQueryHandler creates a handler for the inventory report.
func NewInventoryReportQueryHandler(db *gorm.DB) InventoryReportQueryHandler {
	return InventoryReportQueryHandler{db: db}
}

type inventoryOrderRow struct {
	OrderCode   string
	Status      string
	OrderType   string
	Quantity    int
	PlacedAt    time.Time
	SubCategory *string
}

// Handle executes the report. Inbound orders count as incoming goods and
// everything else as outgoing; orders without a resolvable product fall into
// the "Other" category.
func (h InventoryReportQueryHandler) Handle(
	ctx context.Context,
	query InventoryReportQuery,
) (InventoryReportResponse, error) {
	if err := query.Validate(); err != nil {
		return InventoryReportResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var rows []inventoryOrderRow
	err := db.Raw(`
		SELECT
			o.order_code,
			o.status,
			o.order_type,
			o.quantity,
			o.placed_at,
			s.sub_category
		FROM orders o
		LEFT JOIN stock_items s ON s.id = o.product_id
		ORDER BY o.placed_at DESC
	`).Scan(&rows).Error
	if err != nil {
		return InventoryReportResponse{}, err
	}

	resp := InventoryReportResponse{
		MonthlyInventory: emptyMonthlyFlow(),
		CategoryData:     make([]CategoryQuantity, 0),
		RecentActivity:   make([]OrderActivity, 0),
	}

	categories := make(map[string]int)
	for _, row := range rows {
		monthIndex := int(row.PlacedAt.Month()) - 1
		if row.OrderType == order.TypeInbound.String() {
			resp.MonthlyInventory[monthIndex].Incoming += row.Quantity
		} else {
			resp.MonthlyInventory[monthIndex].Outgoing += row.Quantity
		}

		category := "Other"
		if row.SubCategory != nil && *row.SubCategory != "" {
			category = *row.SubCategory
		}
		categories[category] += row.Quantity

		if row.Status != order.StatusDelivered.String() &&
			row.Status != order.StatusCancelled.String() {
			resp.ActiveOrders++
		}

		if len(resp.RecentActivity) < 5 {
			resp.RecentActivity = append(resp.RecentActivity, OrderActivity{
				OrderCode: row.OrderCode,
				Status:    row.Status,
				Timestamp: row.PlacedAt,
			})
		}
	}

	for name, value := range categories {
		resp.CategoryData = append(resp.CategoryData, CategoryQuantity{Name: name, Value: value})
	}
	sort.Slice(resp.CategoryData, func(i, j int) bool {
		return resp.CategoryData[i].Name < resp.CategoryData[j].Name
	})

	if err = db.Raw(`SELECT COUNT(*) FROM stock_items`).Scan(&resp.TotalItems).Error; err != nil {
		return InventoryReportResponse{}, err
	}
	if err = db.Raw(`SELECT COUNT(*) FROM stock_items WHERE quantity < ?`, LowStockThreshold).
		Scan(&resp.LowStockItems).Error; err != nil {
		return InventoryReportResponse{}, err
	}

	return resp, nil
}

func emptyMonthlyFlow() []MonthlyInventoryFlow {
	flow := make([]MonthlyInventoryFlow, 12)
	for i := range flow {
		flow[i].Month = time.Month(i + 1).String()[:3]
	}
	return flow
}
