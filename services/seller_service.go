package services

import (
	"errors"
	"time"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
)

type SellerService struct {
	Repo        *repository.SellerRepository
	UserRepo    *repository.UserRepository
	ProductRepo *repository.ProductRepository
	OrderRepo   *repository.OrderRepository
}

func NewSellerService(
	repo *repository.SellerRepository,
	userRepo *repository.UserRepository,
	productRepo *repository.ProductRepository,
	orderRepo *repository.OrderRepository,
) *SellerService {
	return &SellerService{
		Repo:        repo,
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}
}

type ProfileView struct {
	Profile      *entity.SellerProfile        `json:"profile"`
	Certificates []entity.SellerCertification `json:"certificates"`
}

func (s *SellerService) Profile(userID uint) (*ProfileView, error) {
	profile, err := s.Repo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	certs, err := s.Repo.ListCerts(profile.ID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{Profile: profile, Certificates: certs}, nil
}

type UpdateProfileReq struct {
	CompanyName  string `json:"companyName"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Description  string `json:"description"`
	CoreProducts string `json:"coreProducts"`
	IsFarmer     bool   `json:"isFarmer"`
	IsRoaster    bool   `json:"isRoaster"`
	IsExporter   bool   `json:"isExporter"`
	IsSupplier   bool   `json:"isSupplier"`
}

func (s *SellerService) UpdateProfile(userID uint, req *UpdateProfileReq) (*entity.SellerProfile, error) {
	profile, err := s.Repo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	profile.CompanyName = req.CompanyName
	profile.Country = req.Country
	profile.City = req.City
	profile.Description = req.Description
	profile.CoreProducts = req.CoreProducts
	profile.IsFarmer = req.IsFarmer
	profile.IsRoaster = req.IsRoaster
	profile.IsExporter = req.IsExporter
	profile.IsSupplier = req.IsSupplier
	if err := s.Repo.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

type AddProductReq struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=Green Roasted Ground Equipment"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// AddProduct lists a new product. Unverified sellers are locked out
// until admin approval.
func (s *SellerService) AddProduct(sellerID uint, req *AddProductReq) (*entity.Product, error) {
	seller, err := s.UserRepo.FindByID(sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.IsVerified {
		return nil, errors.New("your account is pending verification")
	}

	product := &entity.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		SellerID:    sellerID,
	}
	if err := s.ProductRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// RemoveProduct soft-deletes via the is_active flag; order history keeps
// pointing at the row.
func (s *SellerService) RemoveProduct(sellerID, productID uint) error {
	affected, err := s.ProductRepo.Deactivate(productID, sellerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrForbidden
	}
	return nil
}

func (s *SellerService) Products(sellerID uint) ([]entity.Product, error) {
	return s.ProductRepo.ListActiveBySeller(sellerID)
}

type UploadCertReq struct {
	Name          string     `json:"name" binding:"required"`
	DocumentURL   string     `json:"documentUrl" binding:"required"`
	AuthorityName string     `json:"authorityName"`
	ExpiryDate    *time.Time `json:"expiryDate"`
}

func (s *SellerService) UploadCert(userID uint, req *UploadCertReq) (*entity.SellerCertification, error) {
	profile, err := s.Repo.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}
	cert := &entity.SellerCertification{
		Name:          req.Name,
		DocumentURL:   req.DocumentURL,
		AuthorityName: req.AuthorityName,
		ExpiryDate:    req.ExpiryDate,
		ProfileID:     profile.ID,
	}
	if err := s.Repo.CreateCert(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *SellerService) UploadVerificationDoc(userID uint, licenseURL, idCardURL string) error {
	return s.Repo.UpsertVerificationDoc(&entity.VerificationDoc{
		UserID:             userID,
		BusinessLicenseURL: licenseURL,
		IDCardURL:          idCardURL,
	})
}

type PublicSellerView struct {
	Seller           *entity.User          `json:"seller"`
	Profile          *entity.SellerProfile `json:"profile"`
	SuccessfulOrders int64                 `json:"successfulOrders"`
	ActiveProducts   int64                 `json:"activeProducts"`
}

// PublicProfile is the buyer-facing view of a seller's storefront.
func (s *SellerService) PublicProfile(sellerID uint) (*PublicSellerView, error) {
	seller, err := s.UserRepo.FindByID(sellerID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Repo.GetOrCreateProfile(sellerID)
	if err != nil {
		return nil, err
	}
	successful, err := s.OrderRepo.CountRealizedForSeller(sellerID)
	if err != nil {
		return nil, err
	}
	active, err := s.ProductRepo.CountActiveBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return &PublicSellerView{
		Seller:           seller,
		Profile:          profile,
		SuccessfulOrders: successful,
		ActiveProducts:   active,
	}, nil
}
