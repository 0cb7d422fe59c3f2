package services

import (
	"fmt"

	"github.com/biltech1234n/thecoffeelink/entity"
	"github.com/biltech1234n/thecoffeelink/repository"
)

// AdminService performs user management actions. Every action fires a
// direct alert notification to the affected user.
type AdminService struct {
	UserRepo   *repository.UserRepository
	SellerRepo *repository.SellerRepository
	Notifier   *NotificationService
}

func NewAdminService(
	userRepo *repository.UserRepository,
	sellerRepo *repository.SellerRepository,
	notifier *NotificationService,
) *AdminService {
	return &AdminService{UserRepo: userRepo, SellerRepo: sellerRepo, Notifier: notifier}
}

// User account actions
const (
	ActionSuspend         = "suspend"
	ActionUnsuspend       = "unsuspend"
	ActionApproveIdentity = "approve_identity"
	ActionRevokeIdentity  = "revoke_identity"
)

func (s *AdminService) UserAction(action string, userID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	var note string
	switch action {
	case ActionSuspend:
		user.IsActive = false
		note = "Your account has been suspended by the administration."
	case ActionUnsuspend:
		user.IsActive = true
		note = "Your account has been restored."
	case ActionApproveIdentity:
		user.IsVerified = true
		note = "Your identity has been verified. You can now list products."
	case ActionRevokeIdentity:
		user.IsVerified = false
		note = "Your identity verification has been revoked."
	default:
		return nil, fmt.Errorf("unknown action: %s", action)
	}

	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	if err := s.Notifier.AdminAction(user.ID, note, linkProfile); err != nil {
		return nil, err
	}
	return user, nil
}

// Certificate actions
const (
	ActionVerifyCert = "verify_cert"
	ActionRejectCert = "reject_cert"
)

func (s *AdminService) CertAction(action string, certID uint) (*entity.SellerCertification, error) {
	cert, err := s.SellerRepo.FindCert(certID)
	if err != nil {
		return nil, err
	}
	switch action {
	case ActionVerifyCert:
		cert.IsVerified = true
	case ActionRejectCert:
		cert.IsVerified = false
	default:
		return nil, fmt.Errorf("unknown action: %s", action)
	}
	if err := s.SellerRepo.SaveCert(cert); err != nil {
		return nil, err
	}

	var note string
	if cert.IsVerified {
		note = fmt.Sprintf("Your certificate '%s' has been approved.", cert.Name)
	} else {
		note = fmt.Sprintf("Your certificate '%s' was rejected.", cert.Name)
	}
	profile, err := s.SellerRepo.FindProfileByID(cert.ProfileID)
	if err != nil {
		return nil, err
	}
	if err := s.Notifier.AdminAction(profile.UserID, note, linkProfile); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *AdminService) ListUsers() ([]entity.User, error) {
	return s.UserRepo.ListAll()
}
