package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendResetToken(toEmail, token string) error
	SendOrderStatusUpdate(toEmail, itemName, status string) error
	SendSubscriptionDecision(toEmail, plan string, approved bool, reason string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Restro Orders!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #E65100; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 15 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)
	return s.send(toEmail, "Your Verification Code", body)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #E65100; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)
	return s.send(toEmail, "Reset Your Password", body)
}

func (s *emailService) SendOrderStatusUpdate(toEmail, itemName, status string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Order Update</h2>
			<p>Your order <strong>%s</strong> is now:</p>
			<h3 style="color: #E65100;">%s</h3>
			<p>Track it anytime from your account.</p>
		</div>
	`, itemName, status)
	return s.send(toEmail, "Your Order Status Changed", body)
}

func (s *emailService) SendSubscriptionDecision(toEmail, plan string, approved bool, reason string) error {
	if approved {
		body := fmt.Sprintf(`
			<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
				<h2>Membership Activated</h2>
				<p>Your <strong>%s</strong> membership is now active. Enjoy your member benefits!</p>
			</div>
		`, plan)
		return s.send(toEmail, "Your Membership Is Active", body)
	}
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Membership Request Declined</h2>
			<p>We could not activate your <strong>%s</strong> membership.</p>
			<p>Reason: %s</p>
			<p>Please contact us if you believe this is a mistake.</p>
		</div>
	`, plan, reason)
	return s.send(toEmail, "Your Membership Request", body)
}
