package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/constants"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/database"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/middleware"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/repository"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/services"
	"github.com/divyanshukaintura04-web/food-donation-system/internal/uploads"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	authService      *services.AuthService
	workflowService  *services.WorkflowService
	volunteerService *services.VolunteerService
	feedbackService  *services.FeedbackService
}

// setupTestEnv wires the full route table over an in-memory database with a
// cookie session store, mirroring cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Donor{},
		&models.Volunteer{},
		&models.FoodItem{},
		&models.Request{},
		&models.Delivery{},
		&models.Feedback{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	authService := services.NewAuthService(userRepo, adminRepo)
	workflowService := services.NewWorkflowService(requestRepo, foodRepo, volunteerRepo, deliveryRepo)
	volunteerService := services.NewVolunteerService(volunteerRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, donorRepo)
	dashboardService := services.NewDashboardService(foodRepo, requestRepo, volunteerRepo, deliveryRepo, userRepo, donorRepo)

	proofStore, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	authHandler := NewAuthHandler(authService)
	requestHandler := NewRequestHandler(workflowService, dashboardService, proofStore)
	adminHandler := NewAdminHandler(workflowService, volunteerService, dashboardService)
	volunteerHandler := NewVolunteerHandler(workflowService, dashboardService)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	r.GET("/user/dashboard", requestHandler.UserDashboard)
	request := r.Group("/request")
	request.Use(middleware.RequireUser())
	{
		request.GET("/new/:food_id", requestHandler.NewRequestForm)
		request.POST("/new/:food_id", requestHandler.SubmitRequest)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.POST("/approve/:req_id", adminHandler.ApproveRequest)
		admin.POST("/assign_volunteer", adminHandler.AssignVolunteer)
		admin.POST("/add_volunteer", adminHandler.AddVolunteer)
	}

	r.GET("/volunteer/dashboard", volunteerHandler.Dashboard)
	r.POST("/volunteer/update/:delivery_id", volunteerHandler.UpdateDelivery)

	feedback := r.Group("/feedback")
	feedback.Use(middleware.RequireUser())
	{
		feedback.GET("/:donor_id", feedbackHandler.ListDonorFeedback)
		feedback.POST("/:donor_id", feedbackHandler.SubmitFeedback)
	}

	r.GET("/uploads/:filename", requestHandler.ServeProofFile)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:               db,
		router:           r,
		authService:      authService,
		workflowService:  workflowService,
		volunteerService: volunteerService,
		feedbackService:  feedbackService,
	}
}

// postForm sends an application/x-www-form-urlencoded request with optional
// session cookies.
func (env *testEnv) postForm(t *testing.T, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) get(t *testing.T, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// loginUser signs up and logs in a user, returning the session cookies.
func (env *testEnv) loginUser(t *testing.T, username, password string) []*http.Cookie {
	t.Helper()

	_, err := env.authService.Signup(services.SignupInput{
		UserType: "Individual",
		Name:     username,
		Username: username,
		Password: password,
	})
	require.NoError(t, err)

	w := env.postForm(t, "/login", url.Values{
		"role":     {"user"},
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

// loginAdmin seeds an admin account and logs in, returning session cookies.
func (env *testEnv) loginAdmin(t *testing.T) []*http.Cookie {
	t.Helper()

	require.NoError(t, database.SeedSuperAdmin(env.db, "admin", "admin123"))

	w := env.postForm(t, "/login", url.Values{
		"role":     {"admin"},
		"username": {"admin"},
		"password": {"admin123"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

// seedFood creates a donor with one available food item.
func (env *testEnv) seedFood(t *testing.T) (models.Donor, models.FoodItem) {
	t.Helper()

	donor := models.Donor{Name: "City Bakery", Address: "12 Main St"}
	require.NoError(t, env.db.Create(&donor).Error)

	food := models.FoodItem{
		DonorID:  donor.ID,
		FoodName: "Bread",
		Quantity: "20 loaves",
		Status:   models.FoodStatusAvailable,
	}
	require.NoError(t, env.db.Create(&food).Error)

	return donor, food
}
