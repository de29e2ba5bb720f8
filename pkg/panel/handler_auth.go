package panel

import (
	"net/http"
	"strings"
)

// Every seeded account accepts this password. Registration does not
// store passwords at all.
const devPassword = "P@ssw0rd!"

// AuthResponse is the login-style response: the normalized user plus
// a fresh token pair.
type AuthResponse struct {
	User *User `json:"user"`
	TokenPair
}

// MessageBody is the generic {"message": ...} acknowledgment.
type MessageBody struct {
	Message string `json:"message"`
}

func startSession(c *Call, u *User) (int, any) {
	normalizeUser(u)
	c.store.Session = u
	u.LastLoginAt = c.store.NowMillis()
	return http.StatusOK, AuthResponse{User: u, TokenPair: issueTokens(u, c.store.now())}
}

func login(c *Call) (int, any) {
	var req LoginRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	u := c.store.UserByEmail(req.Email)
	if u == nil || req.Password != devPassword {
		return unauthorized("Invalid credentials")
	}
	return startSession(c, u)
}

func register(c *Call) (int, any) {
	var req RegisterRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if c.store.UserByEmail(req.Email) != nil {
		return badRequest("Email already exists")
	}
	now := c.store.NowMillis()
	u := &User{
		ID:          c.store.NextID(),
		Email:       req.Email,
		DisplayName: displayNameOr(req.DisplayName, req.Email),
		Role:        "user",
		Roles:       []string{"user"},
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.store.Users = append(c.store.Users, u)
	return startSession(c, u)
}

func verifyEmail(c *Call) (int, any) {
	var req VerifyEmailRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Email == "" || req.Code == "" {
		return badRequest("Missing verification details")
	}
	u := c.store.UserByEmail(req.Email)
	if u == nil {
		return notFound("Account")
	}
	if u.EmailVerifiedAt == 0 {
		u.EmailVerifiedAt = c.store.NowMillis()
	}
	return startSession(c, u)
}

func forgotPassword(c *Call) (int, any) {
	var req ForgotPasswordRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Email == "" {
		return badRequest("Email required")
	}
	return http.StatusOK, MessageBody{Message: "验证码已发送，请检查邮箱。"}
}

func resetPassword(c *Call) (int, any) {
	var req ResetPasswordRequest
	if err := c.Decode(&req); err != nil {
		return fail(err)
	}
	if req.Email == "" || req.Code == "" || req.Password == "" {
		return badRequest("Missing reset details")
	}
	if c.store.UserByEmail(req.Email) == nil {
		return notFound("Account")
	}
	return http.StatusOK, MessageBody{Message: "密码已重置，请使用新密码登录。"}
}

func refreshSession(c *Call) (int, any) {
	u := c.store.Session
	return http.StatusOK, AuthResponse{User: normalizeUser(u), TokenPair: issueTokens(u, c.store.now())}
}

func logout(c *Call) (int, any) {
	c.store.Session = nil
	return http.StatusNoContent, nil
}

// displayNameOr defaults the display name to the email local part.
func displayNameOr(name, email string) string {
	if name != "" {
		return name
	}
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
