package usecase

import (
	"context"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"
)

const recentOrderLimit = 5

// AdminStatsUsecase は管理ダッシュボードの集計。
type AdminStatsUsecase struct {
	catalogRepo repo.CatalogRepository
	orderRepo   repo.OrderRepository
	userRepo    repo.UserRepository
}

func NewAdminStatsUsecase(
	catalogRepo repo.CatalogRepository,
	orderRepo repo.OrderRepository,
	userRepo repo.UserRepository,
) *AdminStatsUsecase {
	return &AdminStatsUsecase{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

type DashboardResponse struct {
	TotalWildlife int64         `json:"total_wildlife"`
	TotalSafaris  int64         `json:"total_safaris"`
	TotalOrders   int64         `json:"total_orders"`
	TotalUsers    int64         `json:"total_users"`
	RecentOrders  []model.Order `json:"recent_orders"`
}

func (u *AdminStatsUsecase) Dashboard(ctx context.Context) (DashboardResponse, error) {
	wildlife, err := u.catalogRepo.CountByKind(ctx, model.KindWildlife)
	if err != nil {
		return DashboardResponse{}, NewStore(err)
	}

	safaris, err := u.catalogRepo.CountByKind(ctx, model.KindSafari)
	if err != nil {
		return DashboardResponse{}, NewStore(err)
	}

	orders, err := u.orderRepo.Count(ctx)
	if err != nil {
		return DashboardResponse{}, NewStore(err)
	}

	users, err := u.userRepo.Count(ctx)
	if err != nil {
		return DashboardResponse{}, NewStore(err)
	}

	recent, err := u.orderRepo.ListRecent(ctx, recentOrderLimit)
	if err != nil {
		return DashboardResponse{}, NewStore(err)
	}

	return DashboardResponse{
		TotalWildlife: wildlife,
		TotalSafaris:  safaris,
		TotalOrders:   orders,
		TotalUsers:    users,
		RecentOrders:  recent,
	}, nil
}
