// Package query emulates the chainable client of a remote database over the
// in-memory demo store: From(table).Select().Eq(...).Order(...), inserts,
// updates and named RPC procedures. Table names stay strings on purpose; the
// point of the facade is that callers written against it could be moved to a
// real backend without changing shape.
package query

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"replate-backend/entities"
	"replate-backend/pkg/demostore"
)

// Result is what every terminal call resolves to. Data holds the typed rows
// or row (nil when nothing matched); Error carries real failures instead of
// the always-null error of a happy-path mock.
type Result struct {
	Data  any
	Error error
}

type Client struct {
	store *demostore.Store
}

func NewClient(store *demostore.Store) *Client {
	return &Client{store: store}
}

func (c *Client) From(table string) *TableQuery {
	return &TableQuery{store: c.store, table: table}
}

// Rpc dispatches to a named procedure. Unknown names resolve to a no-op
// success, matching the remote-procedure surface being emulated.
func (c *Client) Rpc(name string, params map[string]any) Result {
	switch name {
	case "create_flash_sale":
		_, err := c.store.CreateFlashSale(
			paramString(params, "item_id"),
			paramFloat(params, "discount_percent"),
			time.Duration(paramFloat(params, "duration_minutes"))*time.Minute,
		)
		if err != nil {
			return Result{Error: err}
		}
		return Result{Data: fmt.Sprintf("sale-%s", uuid.New().String())}
	case "claim_food_item":
		claim, err := c.store.ClaimFoodItem(
			paramString(params, "item_id"),
			paramString(params, "student_uuid"),
			int(paramFloat(params, "claim_quantity")),
		)
		if err != nil {
			return Result{Error: err}
		}
		return Result{Data: claim.ID}
	}
	return Result{}
}

func paramString(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// paramFloat tolerates both int and float64; decoded JSON numbers arrive as
// float64.
func paramFloat(params map[string]any, key string) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

type TableQuery struct {
	store *demostore.Store
	table string
}

func (q *TableQuery) Select() *SelectQuery {
	return &SelectQuery{store: q.store, table: q.table}
}

func (q *TableQuery) Insert(item entities.FoodItem) *InsertQuery {
	return &InsertQuery{store: q.store, table: q.table, item: item}
}

func (q *TableQuery) Update(update demostore.FoodItemUpdate) *UpdateQuery {
	return &UpdateQuery{store: q.store, table: q.table, update: update}
}

type SelectQuery struct {
	store *demostore.Store
	table string
}

func (q *SelectQuery) Eq(column string, value string) *EqQuery {
	return &EqQuery{store: q.store, table: q.table, column: column, value: value}
}

func (q *SelectQuery) Gte(column string, value string) *GteQuery {
	return &GteQuery{store: q.store, table: q.table, column: column, value: value}
}

// Order with no filter returns every row of food_items or donations; other
// tables yield a nil row set. Rows come back in store order, which for food
// items is newest first.
func (q *SelectQuery) Order(column string, descending bool) Result {
	switch q.table {
	case "food_items":
		return Result{Data: q.store.FoodItems()}
	case "donations":
		return Result{Data: q.store.Donations()}
	}
	return Result{}
}

type EqQuery struct {
	store  *demostore.Store
	table  string
	column string
	value  string
}

// Single resolves the first matching record for canteens and analytics, nil
// for anything else. A miss is not an error.
func (q *EqQuery) Single() Result {
	switch q.table {
	case "canteens":
		canteen, err := q.store.CanteenByID(q.value)
		if err != nil {
			return Result{}
		}
		return Result{Data: canteen}
	case "analytics":
		for _, snap := range q.store.Analytics() {
			if snap.CanteenID == q.value {
				return Result{Data: snap}
			}
		}
	}
	return Result{}
}

func (q *EqQuery) Order(column string, descending bool) Result {
	switch q.table {
	case "food_items":
		var out []entities.FoodItem
		for _, item := range q.store.FoodItems() {
			if item.CanteenID == q.value {
				out = append(out, item)
			}
		}
		return Result{Data: out}
	case "analytics":
		var out []entities.AnalyticsSnapshot
		for _, snap := range q.store.Analytics() {
			if snap.CanteenID == q.value {
				out = append(out, snap)
			}
		}
		return Result{Data: out}
	}
	return Result{}
}

type GteQuery struct {
	store  *demostore.Store
	table  string
	column string
	value  string
}

// Order applies the lower bound to analytics dates. Only analytics answers
// range queries; other tables yield a nil row set.
func (q *GteQuery) Order(column string, descending bool) Result {
	if q.table != "analytics" {
		return Result{}
	}
	var out []entities.AnalyticsSnapshot
	for _, snap := range q.store.Analytics() {
		if snap.Date >= q.value {
			out = append(out, snap)
		}
	}
	return Result{Data: out}
}

type InsertQuery struct {
	store *demostore.Store
	table string
	item  entities.FoodItem
}

func (q *InsertQuery) Select() *InsertSelect {
	return &InsertSelect{q: q}
}

type InsertSelect struct {
	q *InsertQuery
}

// Single synthesizes the new food item row: generated id, creation time and
// resolved canteen summary, prepended to the store. Other tables echo the
// input back untouched.
func (s *InsertSelect) Single() Result {
	if s.q.table == "food_items" {
		return Result{Data: s.q.store.AddFoodItem(s.q.item)}
	}
	return Result{Data: s.q.item}
}

type UpdateQuery struct {
	store  *demostore.Store
	table  string
	update demostore.FoodItemUpdate
}

func (q *UpdateQuery) Eq(column string, value string) Result {
	if q.table != "food_items" {
		return Result{}
	}
	item, err := q.store.UpdateFoodItem(value, q.update)
	if err != nil {
		return Result{Error: err}
	}
	return Result{Data: item}
}
