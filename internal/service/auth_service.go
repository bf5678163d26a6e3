package service

import (
	"errors"

	"goldenbell_backend/internal/config"
	"goldenbell_backend/internal/model"
	"goldenbell_backend/internal/repository"
	"goldenbell_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	StatsRepo *repository.StatsRepository
	BadgeRepo *repository.BadgeRepository
	DB        *gorm.DB
	Cfg       *config.Config
}

func NewAuthService(
	userRepo *repository.UserRepository,
	statsRepo *repository.StatsRepository,
	badgeRepo *repository.BadgeRepository,
	db *gorm.DB,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		StatsRepo: statsRepo,
		BadgeRepo: badgeRepo,
		DB:        db,
		Cfg:       cfg,
	}
}

// Signup 사용자 생성과 초기 데이터(통계 1행, 미획득 뱃지 선반)를
// 한 트랜잭션으로 만든다
func (s *AuthService) Signup(name, password string) (*model.User, error) {
	_, err := s.UserRepo.FindByName(name)
	if err == nil {
		return nil, util.ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	catalog, err := s.BadgeRepo.FindCatalog()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Password: string(hashedPassword),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if err := tx.Create(&model.UserStats{UserID: user.ID}).Error; err != nil {
			return err
		}

		shelf := make([]model.UserBadge, 0, len(catalog))
		for _, b := range catalog {
			shelf = append(shelf, model.UserBadge{
				UserID:      user.ID,
				BadgeKey:    b.BadgeKey,
				Name:        b.Name,
				Description: b.Description,
			})
		}
		return tx.CreateInBatches(shelf, 50).Error
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(name, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByName(name)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) GetUser(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
