package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/domiapi/nanobanana-http/internal/domi"
	"github.com/domiapi/nanobanana-http/internal/model"
)

// ValidateToken probes the API with a throwaway generation call. The token is
// considered invalid only when the failure points at the credential itself;
// a normal upstream rejection still proves the token usable.
func ValidateToken(c *gin.Context) {
	var req model.ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.APIToken == "" {
		c.JSON(http.StatusOK, model.TokenValidationResult{
			Valid:   false,
			Message: "api_token is required",
		})
		return
	}

	client := domi.DefaultClient().CloneWithToken(req.APIToken)
	result, err := client.GenerateImage(c.Request.Context(), domi.GenerationRequest{
		Prompt: "test",
		Size:   domi.DefaultSize,
		Seed:   1,
	})
	if err == nil {
		testResult := toolSuccess(result)
		c.JSON(http.StatusOK, model.TokenValidationResult{
			Valid:      true,
			Message:    "API token is valid",
			TestResult: &testResult,
		})
		return
	}

	derr := domi.AsError(err, domi.CodeInternalError)
	if isCredentialError(derr) {
		c.JSON(http.StatusOK, model.TokenValidationResult{
			Valid:   false,
			Message: "API token appears to be invalid",
			Error:   derr.Message,
		})
		return
	}
	testResult := toolFailure(err)
	c.JSON(http.StatusOK, model.TokenValidationResult{
		Valid:      true,
		Message:    "API token is valid",
		TestResult: &testResult,
	})
}

func isCredentialError(err *domi.Error) bool {
	if err.Code == domi.CodeMissingAPIToken {
		return true
	}
	return err.Code == domi.CodeAPIError &&
		(err.HTTPStatus == http.StatusUnauthorized || err.HTTPStatus == http.StatusForbidden)
}
