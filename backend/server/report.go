package server

import (
	"math/big"
	"net/http"

	"civictrack/backend/db"
	"civictrack/backend/geocode"
	"civictrack/backend/lifecycle"
	"civictrack/backend/middleware"
	"civictrack/backend/points"
	"civictrack/backend/server/api"
	"civictrack/common/disburse"

	"github.com/apex/log"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

func Report(c *gin.Context) {
	var report = &api.ReportArgs{}

	// Get the arguments.
	if err := c.BindJSON(report); err != nil {
		log.Errorf("Failed to get the argument in /report call: %v", err)
		return
	}

	if report.Version != "2.0" {
		log.Errorf("Bad version in /report, expected: 2.0, got: %v", report.Version)
		c.String(http.StatusNotAcceptable, "Bad API version, expecting 2.0.") // 406
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	// The reporter is always the authenticated caller.
	report.Id = actor.ID

	if report.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	dbc, err := getServerDB()
	if err != nil {
		log.Errorf("Error connecting to DB: %v", err)
		c.String(http.StatusInternalServerError, "Failed to save the report.")
		return
	}

	if report.LocationText == "" && (report.Latitude != 0 || report.Longitude != 0) {
		if addr, err := geocode.Reverse(report.Latitude, report.Longitude); err == nil {
			report.LocationText = addr
		}
	}

	suggested, _ := advisor.Suggest(report.Category)

	savedReport, err := db.CreateReport(dbc, report, suggested)
	if err != nil {
		log.Errorf("Failed to write report: %v", err)
		c.String(http.StatusInternalServerError, "Failed to save the report.") // 500
		return
	}

	publishTransition(&lifecycle.Event{
		ReportSeq: savedReport.Seq,
		OldStatus: lifecycle.StatusPending,
		NewStatus: lifecycle.StatusPending,
		ActorID:   actor.ID,
		Action:    lifecycle.ActionSubmitted,
	})

	c.JSON(http.StatusOK, savedReport)

	go rewardTokens(actor.ID, points.SubmissionPoints)
}

// rewardTokens mirrors the points award on chain for users with a
// registered wallet. Best effort: ledger points are the source of
// truth, the token transfer is a perk.
func rewardTokens(userID string, amount int) {
	if len(disbursers) == 0 {
		return
	}
	dbc, err := getServerDB()
	if err != nil {
		return
	}
	wallet, err := db.GetUserWallet(dbc, userID)
	if err != nil || wallet == "" {
		return
	}
	for _, d := range disbursers {
		_, err := d.DisburseBatch(map[ethcommon.Address]*big.Int{
			ethcommon.HexToAddress(wallet): disburse.ToWei(float32(amount)),
		})
		if err != nil {
			log.Errorf("Token reward for %s failed: %v", userID, err)
		}
	}
}
