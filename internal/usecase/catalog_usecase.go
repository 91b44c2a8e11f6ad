package usecase

import (
	"context"
	"errors"
	"strings"

	"wildsafari/internal/domain/model"
	repo "wildsafari/internal/repository"
)

const (
	homeSafariLimit   = 4
	homeWildlifeLimit = 8
	similarLimit      = 3

	defaultWildlifeImage = "default-wildlife.jpg"
	defaultSafariImage   = "default-safari.jpg"
)

// CatalogUsecase はカタログの公開閲覧と管理CRUD。
type CatalogUsecase struct {
	wildlifeRepo repo.WildlifeRepository
	safariRepo   repo.SafariRepository
}

func NewCatalogUsecase(
	wildlifeRepo repo.WildlifeRepository,
	safariRepo repo.SafariRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		wildlifeRepo: wildlifeRepo,
		safariRepo:   safariRepo,
	}
}

type HomeResponse struct {
	Safaris  []model.Safari   `json:"safaris"`
	Wildlife []model.Wildlife `json:"wildlife"`
}

type WildlifeDetailResponse struct {
	Animal  model.Wildlife   `json:"animal"`
	Similar []model.Wildlife `json:"similar"`
}

type SafariDetailResponse struct {
	Safari  model.Safari   `json:"safari"`
	Similar []model.Safari `json:"similar"`
}

// Home はトップページ用のピックアップ。
func (u *CatalogUsecase) Home(ctx context.Context) (HomeResponse, error) {
	safaris, err := u.safariRepo.List(ctx, homeSafariLimit)
	if err != nil {
		return HomeResponse{}, NewStore(err)
	}

	wildlife, err := u.wildlifeRepo.List(ctx, homeWildlifeLimit)
	if err != nil {
		return HomeResponse{}, NewStore(err)
	}

	return HomeResponse{Safaris: safaris, Wildlife: wildlife}, nil
}

func (u *CatalogUsecase) ListWildlife(ctx context.Context) ([]model.Wildlife, error) {
	items, err := u.wildlifeRepo.List(ctx, 0)
	if err != nil {
		return []model.Wildlife{}, NewStore(err)
	}
	return items, nil
}

// GetWildlife は詳細＋同カテゴリの類似3件。
func (u *CatalogUsecase) GetWildlife(ctx context.Context, id int64) (WildlifeDetailResponse, error) {
	if id <= 0 {
		return WildlifeDetailResponse{}, NewValidation("invalid id")
	}

	w, err := u.wildlifeRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return WildlifeDetailResponse{}, NewNotFound("wildlife")
	}
	if err != nil {
		return WildlifeDetailResponse{}, NewStore(err)
	}

	similar, err := u.wildlifeRepo.ListSimilar(ctx, w.Category, w.ID, similarLimit)
	if err != nil {
		return WildlifeDetailResponse{}, NewStore(err)
	}

	return WildlifeDetailResponse{Animal: w, Similar: similar}, nil
}

func (u *CatalogUsecase) ListSafaris(ctx context.Context) ([]model.Safari, error) {
	items, err := u.safariRepo.List(ctx, 0)
	if err != nil {
		return []model.Safari{}, NewStore(err)
	}
	return items, nil
}

// GetSafari は詳細＋同tierの類似3件。
func (u *CatalogUsecase) GetSafari(ctx context.Context, id int64) (SafariDetailResponse, error) {
	if id <= 0 {
		return SafariDetailResponse{}, NewValidation("invalid id")
	}

	s, err := u.safariRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return SafariDetailResponse{}, NewNotFound("safari")
	}
	if err != nil {
		return SafariDetailResponse{}, NewStore(err)
	}

	similar, err := u.safariRepo.ListSimilar(ctx, s.Tier, s.ID, similarLimit)
	if err != nil {
		return SafariDetailResponse{}, NewStore(err)
	}

	return SafariDetailResponse{Safari: s, Similar: similar}, nil
}

// ========== 管理CRUD ==========

type WildlifeInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Price       float64
	Location    string
	Status      string
}

type SafariInput struct {
	Name        string
	Description string
	Price       float64
	Duration    string
	SafariCount int64
	Tier        string
	ImageURL    string
}

func (in WildlifeInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewValidation("title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewValidation("description is required")
	}
	if in.Price < 0 {
		return NewValidation("price must not be negative")
	}
	return nil
}

func (in SafariInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidation("name is required")
	}
	if in.Price < 0 {
		return NewValidation("price must not be negative")
	}
	if in.SafariCount < 1 {
		return NewValidation("safari_count must be at least 1")
	}
	return nil
}

func (u *CatalogUsecase) CreateWildlife(ctx context.Context, in WildlifeInput) (model.Wildlife, error) {
	if err := in.validate(); err != nil {
		return model.Wildlife{}, err
	}

	if in.ImageURL == "" {
		in.ImageURL = defaultWildlifeImage
	}
	if in.Status == "" {
		in.Status = "Available"
	}

	w, err := u.wildlifeRepo.Create(ctx, model.Wildlife{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Price:       in.Price,
		Location:    in.Location,
		Status:      in.Status,
	})
	if err != nil {
		return model.Wildlife{}, NewStore(err)
	}
	return w, nil
}

func (u *CatalogUsecase) UpdateWildlife(ctx context.Context, id int64, in WildlifeInput) error {
	if id <= 0 {
		return NewValidation("invalid id")
	}
	if err := in.validate(); err != nil {
		return err
	}

	existing, err := u.wildlifeRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFound("wildlife")
	}
	if err != nil {
		return NewStore(err)
	}

	// 画像未指定なら既存のまま
	if in.ImageURL == "" {
		in.ImageURL = existing.ImageURL
	}
	if in.Status == "" {
		in.Status = "Available"
	}

	err = u.wildlifeRepo.Update(ctx, model.Wildlife{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Price:       in.Price,
		Location:    in.Location,
		Status:      in.Status,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFound("wildlife")
	}
	if err != nil {
		return NewStore(err)
	}
	return nil
}

// 削除してもカート・注文の参照行はそのまま（解決時にnull扱い）
func (u *CatalogUsecase) DeleteWildlife(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewValidation("invalid id")
	}

	err := u.wildlifeRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFound("wildlife")
	}
	if err != nil {
		return NewStore(err)
	}
	return nil
}

func (u *CatalogUsecase) CreateSafari(ctx context.Context, in SafariInput) (model.Safari, error) {
	if err := in.validate(); err != nil {
		return model.Safari{}, err
	}

	if in.ImageURL == "" {
		in.ImageURL = defaultSafariImage
	}

	s, err := u.safariRepo.Create(ctx, model.Safari{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		SafariCount: in.SafariCount,
		Tier:        in.Tier,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return model.Safari{}, NewStore(err)
	}
	return s, nil
}

func (u *CatalogUsecase) DeleteSafari(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewValidation("invalid id")
	}

	err := u.safariRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFound("safari")
	}
	if err != nil {
		return NewStore(err)
	}
	return nil
}
