package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
	log "github.com/sirupsen/logrus"

	intconfig "vahanpe/internal/config"
	intdb "vahanpe/internal/db"
	router "vahanpe/internal/http"
	h "vahanpe/internal/http/handlers"
	"vahanpe/internal/mq"
	"vahanpe/internal/notify"
	"vahanpe/internal/otp"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	if env.GinMode == gin.ReleaseMode {
		log.SetFormatter(&log.JSONFormatter{})
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intdb.EnsureSchema(db); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	var notifier notify.Notifier = notify.LogNotifier{}
	if env.TwilioAccountSID != "" {
		notifier = notify.NewTwilioNotifier(env.TwilioAccountSID, env.TwilioAuthToken, env.TwilioFromPhone)
	} else {
		log.Warn("twilio not configured, whatsapp messages go to the log only")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var dispatcher notify.Dispatcher
	var worker *notify.Worker
	if env.AMQPURL != "" {
		pub, err := mq.NewPublisher(env.AMQPURL)
		if err != nil {
			log.Fatalf("rabbitmq publisher: %v", err)
		}
		defer pub.Close()

		consumer, err := mq.NewConsumer(env.AMQPURL, "vahanpe.notifications", []string{notify.RKBookingReceived, notify.RKStatusUpdated})
		if err != nil {
			log.Fatalf("rabbitmq consumer: %v", err)
		}
		defer consumer.Close()

		go func() {
			if err := notify.RunConsumer(ctx, consumer, notifier, env.PortalURL); err != nil {
				log.Errorf("notification consumer stopped: %v", err)
			}
		}()

		dispatcher = notify.AMQPDispatcher{Pub: pub}
	} else {
		worker = notify.NewWorker(notifier, env.PortalURL, 64)
		dispatcher = worker
	}

	var rzp *razorpay.Client
	if env.RazorpayKeyID != "" && env.RazorpayKeySecret != "" {
		rzp = razorpay.NewClient(env.RazorpayKeyID, env.RazorpayKeySecret)
	} else {
		log.Warn("razorpay keys missing, payment routes will not work")
	}

	hs := h.Handlers{
		Env:        env,
		OTP:        otp.NewStore(otp.DefaultTTL, nil),
		Notifier:   notifier,
		Dispatcher: dispatcher,
		Razorpay:   rzp,
	}

	r := router.NewRouter(env, hs)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	cancel()
	if worker != nil {
		worker.Close()
	}

	log.Info("server stopped cleanly")
}
