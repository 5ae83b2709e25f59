package analytics

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

const monthKeyLayout = "2006-01"

var saleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// ExtractSalesData builds per-product, per-seller and per-month breakdowns plus the
// top-5 leaderboards.
func ExtractSalesData(sales []domain.SalesTransaction) domain.SalesAnalysis {
	var out domain.SalesAnalysis

	for _, s := range sales {
		out.TotalSales += s.Amount
		out.TotalOrders++

		product := out.ProductBreakdown.GetOrCreate(s.ProductID, func() domain.ProductSalesSummary {
			return domain.ProductSalesSummary{ProductID: s.ProductID, ProductName: s.ProductName}
		})
		product.TotalSales += s.Amount
		product.OrderCount++
		product.AveragePrice = product.TotalSales / float64(product.OrderCount)
		product.HighestSale = math.Max(product.HighestSale, s.Amount)

		seller := out.SellerBreakdown.GetOrCreate(s.SellerID, func() domain.SellerSalesSummary {
			return domain.SellerSalesSummary{SellerID: s.SellerID}
		})
		seller.TotalSales += s.Amount
		seller.OrderCount++
		seller.AverageOrderValue = seller.TotalSales / float64(seller.OrderCount)

		if key, ok := MonthKey(s.Date); ok {
			bucket := out.MonthlyTrends.GetOrCreate(key, func() domain.MonthlyBucket {
				return domain.MonthlyBucket{Month: key}
			})
			bucket.TotalSales += s.Amount
			bucket.OrderCount++
		}
	}

	out.AverageOrderValue = SafeDivide(out.TotalSales, float64(out.TotalOrders))
	out.TopProducts = topProducts(out.ProductBreakdown.Values())
	out.TopSellers = topSellers(out.SellerBreakdown.Values())
	return out
}

// MonthKey returns the YYYY-MM bucket for a sale date, or false when the date does not
// resolve to a calendar date. Bare integers are read as Unix seconds (10 digits) or
// milliseconds (13 digits).
func MonthKey(date string) (string, bool) {
	if t, ok := parseEpoch(date); ok {
		return t.Format(monthKeyLayout), true
	}
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format(monthKeyLayout), true
		}
	}
	return "", false
}

func parseEpoch(s string) (time.Time, bool) {
	if len(s) != 10 && len(s) != 13 {
		return time.Time{}, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return time.Time{}, false
	}
	if len(s) == 13 {
		return time.UnixMilli(n).UTC(), true
	}
	return time.Unix(n, 0).UTC(), true
}

// topProducts sorts by total sales descending; ties keep insertion order.
func topProducts(all []domain.ProductSalesSummary) []domain.ProductSalesSummary {
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TotalSales > all[j].TotalSales
	})
	return all[:min(TopListSize, len(all))]
}

func topSellers(all []domain.SellerSalesSummary) []domain.SellerSalesSummary {
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TotalSales > all[j].TotalSales
	})
	return all[:min(TopListSize, len(all))]
}
