package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripgo-web/config"
	"tripgo-web/handlers"
	"tripgo-web/logging"
	"tripgo-web/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment")
	} else {
		fmt.Println("✅ .env file loaded and applied")
	}
	cfg := config.Load()

	if err := logging.InitLogger(cfg.Env == "release", cfg.LogLevel); err != nil {
		log.Fatalf("❌ Не удалось инициализировать логгер: %v", err)
	}
	defer logging.Sync()

	handlers.Init(cfg)

	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.SetTrustedProxies(cfg.TrustedProxies)
	r.Use(middleware.SetupCORS(cfg))
	r.Use(middleware.Session(cfg))

	// Загрузка шаблонов
	subFS, err := fs.Sub(templateFS, "templates")
	if err != nil {
		log.Fatalf("❌ Не удалось открыть встроенные шаблоны: %v", err)
	}
	tmpl := template.New("").Funcs(template.FuncMap{
		"firstLetter": func(s string) string {
			if len(s) == 0 {
				return "?"
			}
			return strings.ToUpper(string([]rune(s)[0]))
		},
		"sub": func(a, b int) int { return a - b },
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
	})
	tmpl = template.Must(tmpl.ParseFS(subFS, "*.html"))
	r.SetHTMLTemplate(tmpl)
	log.Println("✅ Шаблоны загружены из embed.FS")

	// ========== СТАТИКА ==========
	r.Static("/static", cfg.StaticPath)

	// Лимитер на чувствительные формы (логин, регистрация, поддержка)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ========== ГРУППЫ МАРШРУТОВ ==========
	public := r.Group("/")
	{
		public.GET("/", handlers.HomeHandler)
		public.GET("/about", handlers.AboutHandler)
		public.GET("/contact", handlers.ContactHandler)
		public.GET("/help", handlers.HelpHandler)
		public.GET("/search", handlers.SearchPageHandler)
		public.GET("/support", handlers.SupportPageHandler)
	}

	authPages := r.Group("/")
	{
		authPages.GET("/login", handlers.LoginPageHandler)
		authPages.GET("/register", handlers.RegisterPageHandler)
		authPages.GET("/forgot-password", handlers.ForgotPasswordPageHandler)
	}

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/bookings", handlers.BookingsPageHandler)
		protected.GET("/bookings/:id", handlers.BookingDetailPageHandler)
		protected.GET("/alerts", handlers.AlertsPageHandler)
		protected.GET("/referral", handlers.ReferralPageHandler)
		protected.GET("/profile", handlers.ProfilePageHandler)
	}

	// API (JSON)
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.GET("/suggest", handlers.SuggestHandler)
		api.GET("/search/hotels", handlers.SearchHotelsHandler)
		api.GET("/search/flights", handlers.SearchFlightsHandler)

		api.POST("/auth/login", authLimiter.Limit(), handlers.LoginHandler)
		api.POST("/auth/register", authLimiter.Limit(), handlers.RegisterHandler)
		api.POST("/auth/forgot-password", authLimiter.Limit(), handlers.ForgotPasswordHandler)
		api.POST("/auth/reset-password", authLimiter.Limit(), handlers.ResetPasswordHandler)
		api.POST("/auth/logout", handlers.LogoutHandler)

		api.POST("/support", authLimiter.Limit(), handlers.CreateSupportRequestHandler)

		// Защищённые эндпоинты API
		authAPI := api.Group("/")
		authAPI.Use(middleware.RequireAuthAPI())
		{
			authAPI.POST("/bookings", handlers.CreateBookingHandler)
			authAPI.POST("/bookings/:id/cancel", handlers.CancelBookingHandler)

			authAPI.GET("/alerts", handlers.ListAlertsHandler)
			authAPI.POST("/alerts", handlers.CreateAlertHandler)
			authAPI.DELETE("/alerts/:id", handlers.DeleteAlertHandler)

			authAPI.GET("/referral/tree", handlers.GetReferralTreeHandler)
			authAPI.GET("/referral/profile", handlers.GetAffiliateProfileHandler)
			authAPI.POST("/referral/join", handlers.JoinAffiliateHandler)

			authAPI.POST("/profile", handlers.UpdateProfileHandler)
			authAPI.POST("/profile/password", handlers.UpdatePasswordHandler)
			authAPI.POST("/profile/delete", handlers.DeleteAccountHandler)
			authAPI.GET("/profile/2fa/qr", handlers.TwoFAQRHandler)
		}
	}

	// Метрики Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 404
	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"Title":    "Страница не найдена — TripGo",
			"Identity": middleware.CurrentIdentity(c),
		})
	})

	// Баннер
	baseURL := "http://localhost:" + cfg.Port
	fmt.Printf("\n============================================================\n")
	fmt.Printf("   🚀 TripGo — веб-интерфейс\n")
	fmt.Printf("============================================================\n\n")
	fmt.Printf("   🔹 Главная           %s/\n", baseURL)
	fmt.Printf("   🔹 Поиск             %s/search\n", baseURL)
	fmt.Printf("   🔹 Мои поездки       %s/bookings\n", baseURL)
	fmt.Printf("   🔹 Отслеживание цен  %s/alerts\n", baseURL)
	fmt.Printf("   🔹 Партнёрам         %s/referral\n", baseURL)
	fmt.Printf("   🔹 Поддержка         %s/support\n\n", baseURL)
	fmt.Printf("   🔐 Вход              %s/login\n", baseURL)
	fmt.Printf("   👤 Профиль           %s/profile\n\n", baseURL)
	fmt.Printf("   📊 Метрики           %s/metrics\n", baseURL)
	fmt.Printf("============================================================\n\n")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Сервер не запустился: %v", err)
	}
}
