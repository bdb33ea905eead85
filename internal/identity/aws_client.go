package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"github.com/jaekwang-park/todo-cloud/internal/model"
)

// AWSClient implements Client against a Cognito user pool using the
// admin API family, so accounts are usable immediately after sign-up
// with no confirmation-code round trip.
type AWSClient struct {
	cip          *cip.Client
	userPoolID   string
	clientID     string
	clientSecret string
}

// NewAWSClient creates a new AWSClient for the given region and user pool.
func NewAWSClient(ctx context.Context, region, userPoolID, clientID, clientSecret string) (*AWSClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &AWSClient{
		cip:          cip.NewFromConfig(cfg),
		userPoolID:   userPoolID,
		clientID:     clientID,
		clientSecret: clientSecret,
	}, nil
}

func (c *AWSClient) secretHash(username string) *string {
	if c.clientSecret == "" {
		return nil
	}
	h := ComputeSecretHash(username, c.clientID, c.clientSecret)
	return &h
}

// SignUp creates the user and immediately sets the password as permanent,
// skipping Cognito's temporary-password state. The email is marked
// verified so no welcome/confirmation mail is sent.
func (c *AWSClient) SignUp(ctx context.Context, input SignUpInput) (model.Account, error) {
	out, err := c.cip.AdminCreateUser(ctx, &cip.AdminCreateUserInput{
		UserPoolId:        &c.userPoolID,
		Username:          &input.Username,
		TemporaryPassword: &input.Password,
		MessageAction:     types.MessageActionTypeSuppress,
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: &input.Email},
			{Name: aws.String("email_verified"), Value: aws.String("true")},
		},
	})
	if err != nil {
		return model.Account{}, mapAWSError(err)
	}
	if out.User == nil {
		return model.Account{}, fmt.Errorf("cognito: user created but no user returned")
	}

	_, err = c.cip.AdminSetUserPassword(ctx, &cip.AdminSetUserPasswordInput{
		UserPoolId: &c.userPoolID,
		Username:   &input.Username,
		Password:   &input.Password,
		Permanent:  true,
	})
	if err != nil {
		return model.Account{}, mapAWSError(err)
	}

	sub := attrValue(out.User.Attributes, "sub")
	if sub == "" {
		return model.Account{}, fmt.Errorf("cognito: user created but sub attribute not found")
	}

	return model.Account{
		UserID:   sub,
		Username: input.Username,
		Email:    input.Email,
	}, nil
}

func (c *AWSClient) Login(ctx context.Context, input LoginInput) (model.TokenPair, error) {
	authParams := map[string]string{
		"USERNAME": input.Username,
		"PASSWORD": input.Password,
	}
	if h := c.secretHash(input.Username); h != nil {
		authParams["SECRET_HASH"] = *h
	}

	out, err := c.cip.AdminInitiateAuth(ctx, &cip.AdminInitiateAuthInput{
		UserPoolId:     &c.userPoolID,
		ClientId:       &c.clientID,
		AuthFlow:       types.AuthFlowTypeAdminNoSrpAuth,
		AuthParameters: authParams,
	})
	if err != nil {
		err = mapAWSError(err)
		// An unknown username is indistinguishable from a wrong password
		// as far as the caller is told.
		if errors.Is(err, ErrUserNotFound) {
			return model.TokenPair{}, fmt.Errorf("login: %w", ErrInvalidCredentials)
		}
		return model.TokenPair{}, err
	}
	if out.AuthenticationResult == nil {
		return model.TokenPair{}, fmt.Errorf("cognito: unexpected nil authentication result")
	}
	result := out.AuthenticationResult

	user, err := c.cip.AdminGetUser(ctx, &cip.AdminGetUserInput{
		UserPoolId: &c.userPoolID,
		Username:   &input.Username,
	})
	if err != nil {
		return model.TokenPair{}, mapAWSError(err)
	}
	sub := attrValue(user.UserAttributes, "sub")
	if sub == "" {
		return model.TokenPair{}, fmt.Errorf("cognito: authenticated but sub attribute not found")
	}

	return model.TokenPair{
		Token:        aws.ToString(result.IdToken),
		RefreshToken: aws.ToString(result.RefreshToken),
		ExpiresIn:    result.ExpiresIn,
		UserID:       sub,
		Username:     input.Username,
	}, nil
}

func (c *AWSClient) LookupByUsername(ctx context.Context, username string) (*model.Account, error) {
	out, err := c.cip.AdminGetUser(ctx, &cip.AdminGetUserInput{
		UserPoolId: &c.userPoolID,
		Username:   &username,
	})
	if err != nil {
		err = mapAWSError(err)
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sub := attrValue(out.UserAttributes, "sub")
	email := attrValue(out.UserAttributes, "email")
	if sub == "" || email == "" {
		return nil, nil
	}

	return &model.Account{
		UserID:   sub,
		Username: username,
		Email:    email,
	}, nil
}

func attrValue(attrs []types.AttributeType, name string) string {
	for _, a := range attrs {
		if aws.ToString(a.Name) == name {
			return aws.ToString(a.Value)
		}
	}
	return ""
}

// mapAWSError converts AWS SDK errors to identity sentinel errors.
func mapAWSError(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("cognito: %w", err)
	}

	switch apiErr.ErrorCode() {
	case "UsernameExistsException":
		return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), ErrUsernameTaken)
	case "UserNotFoundException":
		return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), ErrUserNotFound)
	case "InvalidPasswordException":
		return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), ErrWeakPassword)
	case "NotAuthorizedException":
		return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), ErrInvalidCredentials)
	case "TooManyRequestsException", "LimitExceededException":
		return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), ErrTooManyAttempts)
	case "InvalidParameterException":
		return fmt.Errorf("%s: %w", apiErr.ErrorMessage(), ErrInvalidParameter)
	default:
		return fmt.Errorf("cognito %s: %w", apiErr.ErrorCode(), err)
	}
}

// Compile-time check: AWSClient implements Client.
var _ Client = (*AWSClient)(nil)
