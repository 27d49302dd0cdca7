package server

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"civictrack/backend/db"
	"civictrack/backend/lifecycle"
	"civictrack/backend/middleware"
	"civictrack/backend/notify"
	"civictrack/backend/routing"
	ws "civictrack/backend/websocket"
	"civictrack/common/disburse"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

const (
	EndPointHelp              = "/help"
	EndPointUser              = "/update_or_create_user"
	EndPointReport            = "/report"
	EndPointGetReports        = "/reports"
	EndPointApproveReport     = "/reports/approve"
	EndPointRejectReport      = "/reports/reject"
	EndPointAssignWorker      = "/reports/assign"
	EndPointAutoAssignWorker  = "/reports/auto_assign"
	EndPointStartReport       = "/reports/start"
	EndPointCompleteReport    = "/reports/complete"
	EndPointGetWorkers        = "/workers"
	EndPointWorkerStatus      = "/workers/status"
	EndPointGetLeaderboard    = "/leaderboard"
	EndPointSuggestDepartment = "/suggest_department"
	EndPointGetDepartments    = "/departments"
	EndPointGetStats          = "/stats"
	EndPointGetMap            = "/get_map"
	EndPointListen            = "/transitions/listen"
	EndPointHealth            = "/health"
)

var (
	serverPort   = flag.Int("port", 8080, "The port used by the service.")
	amqpUrl      = flag.String("amqp_url", "", "RabbitMQ URL. Empty disables broker notifications.")
	amqpExchange = flag.String("amqp_exchange", "civictrack.transitions", "RabbitMQ exchange for transition events.")

	ethNetworkUrls    = flag.String("eth_network_urls", "", "Comma-separated Ethereum JSON-RPC endpoints. Empty disables token rewards.")
	ethPrivateKey     = flag.String("eth_private_key", "", "Private key of the disbursement wallet.")
	contractAddresses = flag.String("contract_addresses", "", "Comma-separated CIVX disbursement contract addresses, one per network.")
)

var (
	notifier   *notify.Notifier
	wsHub      *ws.Hub
	advisor    *routing.Advisor
	disbursers []*disburse.Disburser
)

func setupNotifier() {
	if *amqpUrl == "" {
		log.Warn("No amqp_url given, broker notifications disabled")
		return
	}
	n, err := notify.NewNotifier(*amqpUrl, *amqpExchange)
	if err != nil {
		log.Errorf("Failed to connect to RabbitMQ, continuing without it: %v", err)
		return
	}
	notifier = n
	log.Infof("Publishing transition events to exchange %s", *amqpExchange)
}

func setupDisbursers() {
	if *ethNetworkUrls == "" || *ethPrivateKey == "" {
		log.Warn("No eth_network_urls given, token rewards disabled")
		return
	}
	urls := strings.Split(*ethNetworkUrls, ",")
	addrs := strings.Split(*contractAddresses, ",")
	if len(urls) != len(addrs) {
		log.Errorf("Mismatched eth_network_urls and contract_addresses lengths: %d vs %d", len(urls), len(addrs))
		return
	}
	for i, url := range urls {
		d, err := disburse.NewDisburser(url, *ethPrivateKey, addrs[i])
		if err != nil {
			log.Errorf("Failed to create disburser for %s: %v", url, err)
			continue
		}
		disbursers = append(disbursers, d)
	}
	log.Infof("Created %d token disbursers", len(disbursers))
}

// StartService wires the storage, the event fan-out and the HTTP
// routes, then serves until killed.
func StartService() {
	log.Info("Starting the service...")

	dbc, err := getServerDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer closeServerDB()
	if err := db.InitSchema(dbc); err != nil {
		log.Fatalf("Failed to initialize the schema: %v", err)
	}

	affinities, err := db.LoadAffinities(dbc)
	if err != nil {
		log.Fatalf("Failed to load routing affinities: %v", err)
	}
	advisor = routing.NewAdvisor(affinities)

	setupNotifier()
	setupDisbursers()

	wsHub = ws.NewHub()
	go wsHub.Run()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{EndPointListen})))

	router.GET(EndPointHelp, Help)
	router.GET(EndPointHealth, Health)
	router.POST(EndPointUser, CreateOrUpdateUser)
	router.GET(EndPointGetLeaderboard, GetLeaderboard)
	router.GET(EndPointSuggestDepartment, SuggestDepartment)
	router.GET(EndPointGetDepartments, GetDepartments)
	router.GET(EndPointGetStats, GetStats)
	router.POST(EndPointGetMap, GetMap)
	router.GET(EndPointListen, ListenTransitions)

	authed := router.Group("/", middleware.Identity())
	authed.POST(EndPointReport, Report)
	authed.GET(EndPointGetReports, GetReports)
	authed.GET(EndPointReport, ReadReport)
	authed.POST(EndPointApproveReport, ApproveReport)
	authed.POST(EndPointRejectReport, RejectReport)
	authed.POST(EndPointAssignWorker, AssignWorker)
	authed.POST(EndPointAutoAssignWorker, AutoAssignWorker)
	authed.POST(EndPointStartReport, StartReport)
	authed.POST(EndPointCompleteReport, CompleteReport)
	authed.GET(EndPointGetWorkers, GetWorkers)
	authed.POST(EndPointWorkerStatus, UpdateWorkerStatus)

	router.Run(fmt.Sprintf(":%d", *serverPort))
	log.Info("Finished the service. Should not ever being seen.")
}

// publishTransition fans a committed transition out to the broker and
// the websocket feed. A no-op retry (old == new) publishes nothing.
func publishTransition(e *lifecycle.Event) {
	if e.OldStatus == e.NewStatus && e.Action != lifecycle.ActionSubmitted {
		return
	}
	if notifier != nil {
		notifier.PublishTransitionAsync(e)
	}
	if wsHub != nil {
		wsHub.BroadcastTransition(e)
	}
}
