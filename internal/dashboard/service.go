package dashboard

import (
	"sort"
	"strings"

	"github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/enums"
	pkgerrors "github.com/THEGunDevil/Food-E-Commerce-Frontend/pkg/errors"
)

// The dashboard serves fixed analytics until the storefront API grows
// reporting endpoints. Figures are in BDT.

// Stat is one tile of the overview grid.
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// DailySales is one day of the sales overview chart.
type DailySales struct {
	Day    string `json:"day"`
	Sales  int    `json:"sales"`
	Orders int    `json:"orders"`
}

// SalesOverview aggregates the daily series.
type SalesOverview struct {
	Days          []DailySales `json:"days"`
	TotalSales    int          `json:"total_sales"`
	TotalOrders   int          `json:"total_orders"`
	AvgOrderValue float64      `json:"avg_order_value"`
	WeekGrowth    float64      `json:"week_growth"`
}

// Dish is one entry of the top dishes board.
type Dish struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        int     `json:"price"`
	Sales        int     `json:"sales"`
	Revenue      int     `json:"revenue"`
	Trend        int     `json:"trend"`
	Rating       float64 `json:"rating"`
	PrepTime     int     `json:"prep_time"`
	SpicyLevel   int     `json:"spicy_level"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsSpecial    bool    `json:"is_special"`
}

// Order is one row of the recent orders table.
type Order struct {
	ID           string              `json:"id"`
	Customer     string              `json:"customer"`
	Amount       int                 `json:"amount"`
	Items        int                 `json:"items"`
	Status       enums.OrderStatus   `json:"status"`
	Time         string              `json:"time"`
	DeliveryType enums.DeliveryType  `json:"delivery_type"`
	Payment      enums.PaymentMethod `json:"payment"`
	ItemsList    []string            `json:"items_list"`
}

// CategoryShare is one slice of the category performance chart.
type CategoryShare struct {
	Name  string `json:"name"`
	Share int    `json:"share"`
	Trend int    `json:"trend"`
}

// RevenuePoint is one bucket of the revenue trend.
type RevenuePoint struct {
	Label   string `json:"label"`
	Revenue int    `json:"revenue"`
	Profit  int    `json:"profit"`
	Orders  int    `json:"orders,omitempty"`
}

// RevenueTrend is the revenue chart for one time range.
type RevenueTrend struct {
	Range        string         `json:"range"`
	Points       []RevenuePoint `json:"points"`
	TotalRevenue int            `json:"total_revenue"`
	TotalProfit  int            `json:"total_profit"`
	Growth       float64        `json:"growth"`
}

var stats = []Stat{
	{Title: "Total Revenue", Value: "৳42,500", Change: "+12.5%"},
	{Title: "Total Orders", Value: "156", Change: "+8.2%"},
	{Title: "Active Customers", Value: "342", Change: "+5.1%"},
	{Title: "Average Order Value", Value: "৳272", Change: "+3.4%"},
}

var salesDays = []DailySales{
	{Day: "Sat", Sales: 42500, Orders: 48},
	{Day: "Sun", Sales: 51200, Orders: 56},
	{Day: "Mon", Sales: 38900, Orders: 42},
	{Day: "Tue", Sales: 46700, Orders: 51},
	{Day: "Wed", Sales: 53400, Orders: 59},
	{Day: "Thu", Sales: 49800, Orders: 53},
	{Day: "Fri", Sales: 61200, Orders: 67},
}

var dishes = []Dish{
	{ID: "1", Name: "Kacchi Biryani (Mutton)", Category: "biriyani", Price: 450, Sales: 156, Revenue: 70200, Trend: 25, Rating: 4.8, PrepTime: 45, SpicyLevel: 2, IsSpecial: true},
	{ID: "2", Name: "Chicken Roast", Category: "meat", Price: 280, Sales: 124, Revenue: 34720, Trend: 12, Rating: 4.5, PrepTime: 30, SpicyLevel: 1},
	{ID: "3", Name: "Beef Tehari", Category: "biriyani", Price: 320, Sales: 98, Revenue: 31360, Trend: 18, Rating: 4.6, PrepTime: 40, SpicyLevel: 3},
	{ID: "4", Name: "Prawn Malai Curry", Category: "fish", Price: 380, Sales: 76, Revenue: 28880, Trend: 8, Rating: 4.7, PrepTime: 35, SpicyLevel: 1, IsSpecial: true},
	{ID: "5", Name: "Firni", Category: "desserts", Price: 80, Sales: 142, Revenue: 11360, Trend: 32, Rating: 4.9, PrepTime: 20, IsVegetarian: true},
	{ID: "6", Name: "Mixed Vegetable", Category: "vegetable", Price: 120, Sales: 89, Revenue: 10680, Trend: 5, Rating: 4.3, PrepTime: 25, SpicyLevel: 1, IsVegetarian: true},
	{ID: "7", Name: "Chicken Tikka", Category: "meat", Price: 220, Sales: 67, Revenue: 14740, Trend: 15, Rating: 4.4, PrepTime: 30, SpicyLevel: 2},
	{ID: "8", Name: "Borhani", Category: "drinks", Price: 120, Sales: 183, Revenue: 21960, Trend: 28, Rating: 4.7, PrepTime: 5, SpicyLevel: 1, IsVegetarian: true},
}

var orders = []Order{
	{ID: "#ORD-2456", Customer: "Rahim Khan", Amount: 1250, Items: 4, Status: "delivered", Time: "10:30 AM", DeliveryType: "delivery", Payment: "cod", ItemsList: []string{"Kacchi Biryani", "Borhani", "Firni"}},
	{ID: "#ORD-2455", Customer: "Fatima Begum", Amount: 850, Items: 2, Status: "preparing", Time: "10:15 AM", DeliveryType: "pickup", Payment: "bkash", ItemsList: []string{"Chicken Roast", "Paratha"}},
	{ID: "#ORD-2454", Customer: "Karim Ahmed", Amount: 1500, Items: 5, Status: "ready", Time: "9:45 AM", DeliveryType: "delivery", Payment: "cod", ItemsList: []string{"Beef Tehari", "Chicken Curry", "Salad"}},
	{ID: "#ORD-2453", Customer: "Sadia Rahman", Amount: 620, Items: 3, Status: "pending", Time: "9:30 AM", DeliveryType: "delivery", Payment: "bkash", ItemsList: []string{"Vegetable Curry", "Rice"}},
	{ID: "#ORD-2452", Customer: "Mizanur Rahman", Amount: 2100, Items: 6, Status: "delivered", Time: "9:00 AM", DeliveryType: "pickup", Payment: "card", ItemsList: []string{"Mutton Biryani", "Korma", "Raita"}},
	{ID: "#ORD-2451", Customer: "Tahmina Akter", Amount: 980, Items: 3, Status: "cancelled", Time: "8:45 AM", DeliveryType: "delivery", Payment: "cod", ItemsList: []string{"Fish Curry", "Dal"}},
	{ID: "#ORD-2450", Customer: "Shahriar Ahmed", Amount: 1750, Items: 4, Status: "preparing", Time: "8:30 AM", DeliveryType: "delivery", Payment: "bkash", ItemsList: []string{"Special Biryani", "Kebab"}},
	{ID: "#ORD-2449", Customer: "Nusrat Jahan", Amount: 540, Items: 2, Status: "ready", Time: "8:15 AM", DeliveryType: "pickup", Payment: "cod", ItemsList: []string{"Soup", "Bread"}},
}

var categoryShares = []CategoryShare{
	{Name: "Biriyani", Share: 42, Trend: 15},
	{Name: "Meat Dishes", Share: 25, Trend: 8},
	{Name: "Fish", Share: 18, Trend: -3},
	{Name: "Vegetables", Share: 8, Trend: 12},
	{Name: "Desserts", Share: 5, Trend: 20},
	{Name: "Drinks", Share: 2, Trend: 5},
}

var monthlyRevenue = []RevenuePoint{
	{Label: "Jul", Revenue: 1850000, Profit: 425000, Orders: 1850},
	{Label: "Aug", Revenue: 1920000, Profit: 445000, Orders: 1920},
	{Label: "Sep", Revenue: 2100000, Profit: 510000, Orders: 2100},
	{Label: "Oct", Revenue: 2250000, Profit: 550000, Orders: 2250},
	{Label: "Nov", Revenue: 2400000, Profit: 600000, Orders: 2400},
	{Label: "Dec", Revenue: 2750000, Profit: 700000, Orders: 2750},
}

var weeklyRevenue = []RevenuePoint{
	{Label: "Week 1", Revenue: 625000, Profit: 150000},
	{Label: "Week 2", Revenue: 680000, Profit: 165000},
	{Label: "Week 3", Revenue: 720000, Profit: 180000},
	{Label: "Week 4", Revenue: 725000, Profit: 185000},
}

// Service serves the admin dashboard's analytics fixtures.
type Service interface {
	Stats() []Stat
	SalesOverview() SalesOverview
	TopDishes(category, sortBy string) []Dish
	RecentOrders(status, deliveryType string) []Order
	CategoryPerformance() []CategoryShare
	RevenueTrend(rangeName string) (RevenueTrend, error)
}

type service struct{}

// NewService builds the dashboard service.
func NewService() Service {
	return service{}
}

// Stats returns the overview tiles.
func (service) Stats() []Stat {
	out := make([]Stat, len(stats))
	copy(out, stats)
	return out
}

// SalesOverview returns the daily series with its aggregates.
func (service) SalesOverview() SalesOverview {
	days := make([]DailySales, len(salesDays))
	copy(days, salesDays)

	totalSales, totalOrders := 0, 0
	for _, day := range days {
		totalSales += day.Sales
		totalOrders += day.Orders
	}

	avg := 0.0
	if totalOrders > 0 {
		avg = float64(totalSales) / float64(totalOrders)
	}

	return SalesOverview{
		Days:          days,
		TotalSales:    totalSales,
		TotalOrders:   totalOrders,
		AvgOrderValue: avg,
		WeekGrowth:    12.5,
	}
}

// TopDishes filters by category and sorts by sales, revenue, or rating.
// Sales is the default ordering.
func (service) TopDishes(category, sortBy string) []Dish {
	var out []Dish
	for _, dish := range dishes {
		if category != "" && category != "all" && dish.Category != category {
			continue
		}
		out = append(out, dish)
	}

	switch strings.ToLower(sortBy) {
	case "revenue":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	}
	return out
}

// RecentOrders filters the order feed by status and delivery type.
func (service) RecentOrders(status, deliveryType string) []Order {
	var out []Order
	for _, order := range orders {
		if status != "" && status != "all" && order.Status != enums.OrderStatus(status) {
			continue
		}
		if deliveryType != "" && deliveryType != "all" && order.DeliveryType != enums.DeliveryType(deliveryType) {
			continue
		}
		out = append(out, order)
	}
	return out
}

// CategoryPerformance returns the sales share per menu category.
func (service) CategoryPerformance() []CategoryShare {
	out := make([]CategoryShare, len(categoryShares))
	copy(out, categoryShares)
	return out
}

// RevenueTrend returns the monthly or weekly revenue chart.
func (service) RevenueTrend(rangeName string) (RevenueTrend, error) {
	var points []RevenuePoint
	var growth float64

	switch strings.ToLower(rangeName) {
	case "", "monthly":
		rangeName = "monthly"
		points = monthlyRevenue
		growth = 14.6
	case "weekly":
		points = weeklyRevenue
		growth = 8.3
	default:
		return RevenueTrend{}, pkgerrors.New(pkgerrors.CodeValidation, "range must be monthly or weekly")
	}

	out := make([]RevenuePoint, len(points))
	copy(out, points)

	totalRevenue, totalProfit := 0, 0
	for _, point := range out {
		totalRevenue += point.Revenue
		totalProfit += point.Profit
	}

	return RevenueTrend{
		Range:        strings.ToLower(rangeName),
		Points:       out,
		TotalRevenue: totalRevenue,
		TotalProfit:  totalProfit,
		Growth:       growth,
	}, nil
}
