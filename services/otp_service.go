package services

import (
	"context"
	"fmt"
	"time"

	"github.com/projectdesk-api/dto"
	"github.com/projectdesk-api/utils"
)

// OTPService logs users in with a one-time code sent to their phone.
// Codes are kept per phone number in an expiring store, hashed with bcrypt.
type OTPService struct {
	users  UserRepository
	store  OTPStore
	sms    SMSSender
	auth   *AuthService
	ttl    time.Duration
	length int
}

// NewOTPService creates a new OTP service instance
func NewOTPService(users UserRepository, store OTPStore, sms SMSSender, auth *AuthService, ttl time.Duration, length int) *OTPService {
	return &OTPService{
		users:  users,
		store:  store,
		sms:    sms,
		auth:   auth,
		ttl:    ttl,
		length: length,
	}
}

func otpKey(phone string) string {
	return "otp:" + phone
}

// RequestOTP sends a fresh code to the user registered with phone, replacing any earlier code.
// found is false when no live user has that phone number.
func (s *OTPService) RequestOTP(ctx context.Context, phone string) (bool, error) {
	user, err := s.users.FindByPhone(ctx, phone)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find user by phone: %w", err)
	}

	code, err := utils.GenerateNumericCode(s.length)
	if err != nil {
		return true, fmt.Errorf("generate code: %w", err)
	}
	hash, err := utils.HashSecret(code)
	if err != nil {
		return true, fmt.Errorf("hash code: %w", err)
	}
	if err := s.store.Put(ctx, otpKey(phone), hash, s.ttl); err != nil {
		return true, fmt.Errorf("store code: %w", err)
	}

	body := fmt.Sprintf("Your ProjectDesk login code is %s", code)
	if err := s.sms.SendSMS(ctx, user.PhoneNumber, body); err != nil {
		_ = s.store.Delete(ctx, otpKey(phone))
		return true, err
	}

	utils.Logger.WithField("userId", user.ID).Info("Login code sent")
	return true, nil
}

// VerifyOTP exchanges a valid code for a session. The stored code is consumed
// by the first attempt, right or wrong, so concurrent attempts cannot share it.
// ok is false for missing, expired or wrong codes.
func (s *OTPService) VerifyOTP(ctx context.Context, phone, code string) (*dto.LoginResponse, bool, error) {
	hash, found, err := s.store.Take(ctx, otpKey(phone))
	if err != nil {
		return nil, false, fmt.Errorf("consume code: %w", err)
	}
	if !found || !utils.CompareSecret(hash, code) {
		return nil, false, nil
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if isNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find user by phone: %w", err)
	}

	resp, err := s.auth.issueSession(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return resp, true, nil
}
