package orders

import (
	"context"
	"sort"

	"github.com/glowmora/storefront-api/models"
)

// topProductLimit caps the product leaderboard in the summary.
const topProductLimit = 5

// Summary is the admin dashboard aggregation, computed from the real order
// log. Revenue is the sum of stored order totals, never recomputed from
// line items.
type Summary struct {
	Orders      int                        `json:"orders"`
	Revenue     float64                    `json:"revenue"`
	ByStatus    map[models.OrderStatus]int `json:"byStatus"`
	TopProducts []ProductSales             `json:"topProducts"`
}

// ProductSales is units sold and line revenue for one product.
type ProductSales struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// Summarize aggregates the order log. Concurrent callers share one
// computation via singleflight; the shared read runs on a detached context
// so one caller cancelling cannot fail the others.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	detached := context.WithoutCancel(ctx)
	v, err, _ := s.sfg.Do("summary", func() (interface{}, error) {
		all, err := s.List(detached)
		if err != nil {
			return nil, err
		}

		sum := &Summary{ByStatus: make(map[models.OrderStatus]int)}
		byProduct := make(map[string]*ProductSales)

		for _, o := range all {
			sum.Orders++
			sum.Revenue += o.Total
			sum.ByStatus[o.Status]++
			for _, it := range o.Items {
				ps, ok := byProduct[it.ID]
				if !ok {
					ps = &ProductSales{ID: it.ID, Name: it.Name}
					byProduct[it.ID] = ps
				}
				ps.Units += it.Quantity
				ps.Revenue += it.Price * float64(it.Quantity)
			}
		}

		top := make([]ProductSales, 0, len(byProduct))
		for _, ps := range byProduct {
			top = append(top, *ps)
		}
		sort.Slice(top, func(i, j int) bool {
			if top[i].Units != top[j].Units {
				return top[i].Units > top[j].Units
			}
			return top[i].ID < top[j].ID
		})
		if len(top) > topProductLimit {
			top = top[:topProductLimit]
		}
		sum.TopProducts = top

		return sum, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Summary), nil
}
