package services

import (
	"time"

	"github.com/biltech1234n/thecoffeelink/repository"
)

// DashboardService computes the revenue figures and analytics shown on
// the seller and admin panels. Every revenue number flows through
// entity.RevenueStatuses via the order repository.
type DashboardService struct {
	OrderRepo   *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	UserRepo    *repository.UserRepository
}

func NewDashboardService(
	orderRepo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
	}
}

type SellerDashboard struct {
	ProductsCount   int64                    `json:"productsCount"`
	OrdersCount     int64                    `json:"ordersCount"`
	Revenue         int64                    `json:"revenue"`
	StatusBreakdown []repository.StatusCount `json:"statusBreakdown"`
}

func (s *DashboardService) ForSeller(sellerID uint) (*SellerDashboard, error) {
	products, err := s.ProductRepo.CountActiveBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.CountForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.OrderRepo.SumRevenueForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.OrderRepo.CountByStatusForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	return &SellerDashboard{
		ProductsCount:   products,
		OrdersCount:     orders,
		Revenue:         revenue,
		StatusBreakdown: breakdown,
	}, nil
}

type BusinessStats struct {
	RevenueToday int64 `json:"revenueToday"`
	RevenueMonth int64 `json:"revenueMonth"`
	RevenueYear  int64 `json:"revenueYear"`
	TotalOrders  int64 `json:"totalOrders"`
	TotalItems   int64 `json:"totalItems"`
	Rank         int   `json:"rank"`
	TotalSellers int   `json:"totalSellers"`
}

// BusinessStatsFor returns the date-windowed revenue figures and the
// seller's market rank.
func (s *DashboardService) BusinessStatsFor(sellerID uint, now time.Time) (*BusinessStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	today, err := s.OrderRepo.SumRevenueForSellerBetween(sellerID, dayStart, now)
	if err != nil {
		return nil, err
	}
	month, err := s.OrderRepo.SumRevenueForSellerBetween(sellerID, monthStart, now)
	if err != nil {
		return nil, err
	}
	year, err := s.OrderRepo.SumRevenueForSellerBetween(sellerID, yearStart, now)
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.CountRealizedForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	items, err := s.ProductRepo.CountActiveBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	rank, total, err := s.RankFor(sellerID)
	if err != nil {
		return nil, err
	}

	return &BusinessStats{
		RevenueToday: today,
		RevenueMonth: month,
		RevenueYear:  year,
		TotalOrders:  orders,
		TotalItems:   items,
		Rank:         rank,
		TotalSellers: total,
	}, nil
}

// RankFor returns the seller's 1-based market position by realized
// revenue, 0 when the seller is not in the ranking.
func (s *DashboardService) RankFor(sellerID uint) (rank, totalSellers int, err error) {
	ranked, err := s.OrderRepo.RankSellers()
	if err != nil {
		return 0, 0, err
	}
	for i, row := range ranked {
		if row.SellerID == sellerID {
			return i + 1, len(ranked), nil
		}
	}
	return 0, len(ranked), nil
}

type AdminDashboard struct {
	TotalUsers    int64                    `json:"totalUsers"`
	TotalProducts int64                    `json:"totalProducts"`
	TotalRevenue  int64                    `json:"totalRevenue"`
	UsersByRole   []repository.RoleCount   `json:"usersByRole"`
	OrdersByState []repository.StatusCount `json:"ordersByStatus"`
}

func (s *DashboardService) ForAdmin() (*AdminDashboard, error) {
	users, err := s.UserRepo.CountAll()
	if err != nil {
		return nil, err
	}
	products, err := s.ProductRepo.CountAll()
	if err != nil {
		return nil, err
	}
	revenue, err := s.OrderRepo.SumTotalRevenue()
	if err != nil {
		return nil, err
	}
	byRole, err := s.UserRepo.CountByRole()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.OrderRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{
		TotalUsers:    users,
		TotalProducts: products,
		TotalRevenue:  revenue,
		UsersByRole:   byRole,
		OrdersByState: byStatus,
	}, nil
}
