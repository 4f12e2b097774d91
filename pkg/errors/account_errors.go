package errors

var (
	ErrUserNotFound       = NotFound("user not found")
	ErrEmailTaken         = AlreadyExists("an account with this email already exists")
	ErrInvalidUsername    = InvalidArg("username must be 3-32 chars, letters, numbers and underscores only")
	ErrInvalidCredentials = Unauthorized("invalid email or password")
	ErrNotAHighScore      = FailedPrecondition("score does not beat the stored high score")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}

func ErrQuizFetchFailed(cause error) error {
	return Wrap(CodeUnavailable, "failed to fetch quizzes", cause)
}
