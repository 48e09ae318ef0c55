package routes

import (
	"net/http"

	"fieldserve/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth        = "/auth"
	PathRecords     = "/records"
	PathChecklists  = "/checklists"
	PathDocRefs     = "/doc-references"
	PathWizard      = "/wizard"
	PathOtp         = "/otp"
	PathSubmissions = "/submissions"
	PathProposals   = "/proposals"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}

func addPortalRoutes(
	rg *gin.RouterGroup,
	recordHandler *handlers.RecordHandler,
	wizardHandler *handlers.WizardHandler,
	otpHandler *handlers.OtpHandler,
	submissionHandler *handlers.SubmissionHandler,
	proposalHandler *handlers.ProposalHandler,
) {
	records := rg.Group(PathRecords)
	{
		records.GET("/pending/:customer_code", recordHandler.ListPending)
	}

	checklists := rg.Group(PathChecklists)
	{
		checklists.GET("/:part_number", recordHandler.ChecklistByPart)
	}

	docRefs := rg.Group(PathDocRefs)
	{
		docRefs.GET("/:part_number", recordHandler.DocRefsByPart)
	}

	wizard := rg.Group(PathWizard)
	{
		wizard.POST("/sessions", wizardHandler.Start)
		wizard.PUT("/sessions/:session_id/result", wizardHandler.SetResult)
		wizard.PUT("/sessions/:session_id/remark", wizardHandler.SetRemark)
		wizard.PUT("/sessions/:session_id/measurement", wizardHandler.SetMeasurement)
		wizard.POST("/sessions/:session_id/advance", wizardHandler.Advance)
		wizard.POST("/sessions/:session_id/retreat", wizardHandler.Retreat)
		wizard.POST("/sessions/:session_id/finish", wizardHandler.Finish)
	}

	otp := rg.Group(PathOtp)
	{
		otp.POST("/request", otpHandler.RequestCode)
		otp.POST("/verify", otpHandler.VerifyCode)
	}

	submissions := rg.Group(PathSubmissions)
	{
		submissions.POST("", submissionHandler.SubmitBatch)
		submissions.GET("/:batch_id", submissionHandler.GetBatch)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("/revision-totals", proposalHandler.RevisionTotals)
	}
}
