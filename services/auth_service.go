package services

import (
	"errors"

	"github.com/biltech1234n/thecoffeelink/configs"
	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
	"github.com/biltech1234n/thecoffeelink/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repo *repository.UserRepository
	Cfg  *configs.Config
}

func NewAuthService(repo *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Repo: repo, Cfg: cfg}
}

type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=buyer seller"`
}

// Register creates a buyer or seller account. Sellers start unverified
// and stay locked out of listing until an admin approves them. Admin
// accounts are seeded, not self-registered.
func (s *AuthService) Register(req *RegisterReq) (*entity.User, string, error) {
	if req.Username == entity.GuestUsername {
		return nil, "", errors.New("username is reserved")
	}
	if _, err := s.Repo.FindByUsername(req.Username); err == nil {
		return nil, "", errors.New("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
		IsActive: true,
		// buyers don't need identity review
		IsVerified: req.Role == entity.RoleBuyer,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Login(req *LoginReq) (*entity.User, string, error) {
	user, err := s.Repo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.New("invalid credentials")
		}
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", errors.New("account suspended")
	}
	// the guest account has no hash and can never pass this check
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

type UpdateMeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (s *AuthService) UpdateMe(userID uint, req *UpdateMeReq) (*entity.User, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Email = req.Email
	if err := s.Repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return errors.New("current password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return s.Repo.Save(user)
}
