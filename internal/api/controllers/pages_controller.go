package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/models/request_models"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/models/response_models"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/internal/services"
	"github.com/lanjin11123456-arch/obesity-prediction-tool/pkg/utils"
)

type PagesController struct {
	assessmentService services.AssessmentServiceInterface
}

func NewPagesController(assessmentService services.AssessmentServiceInterface) *PagesController {
	return &PagesController{
		assessmentService: assessmentService,
	}
}

// assessmentForm keeps the submitted values as entered so the page can echo
// them back, valid or not.
type assessmentForm struct {
	Gender   string
	Age      string
	RopeSkip string
	Reaction string
	Run50m   string
	WaistCm  string
	HipCm    string
	ChestCm  string
}

func defaultForm() assessmentForm {
	return assessmentForm{
		Gender:   "1",
		Age:      "10",
		RopeSkip: "120",
		Reaction: "0.4",
		Run50m:   "9.5",
		WaistCm:  "65",
		HipCm:    "75",
		ChestCm:  "70",
	}
}

func formFromPost(c *gin.Context) assessmentForm {
	return assessmentForm{
		Gender:   c.PostForm("gender"),
		Age:      c.PostForm("age"),
		RopeSkip: c.PostForm("rope_skip"),
		Reaction: c.PostForm("reaction_time"),
		Run50m:   c.PostForm("run_50m"),
		WaistCm:  c.PostForm("waist_cm"),
		HipCm:    c.PostForm("hip_cm"),
		ChestCm:  c.PostForm("chest_cm"),
	}
}

// hasEmptyField reports whether any measurement was left blank. Gin's form
// mapper turns an empty value into zero for numeric pointer fields, so
// emptiness has to be checked before binding or a blank rope-skip count
// would be scored as a legitimate 0.
func (f assessmentForm) hasEmptyField() bool {
	return f.Gender == "" || f.Age == "" || f.RopeSkip == "" || f.Reaction == "" ||
		f.Run50m == "" || f.WaistCm == "" || f.HipCm == "" || f.ChestCm == ""
}

type homePageData struct {
	Form      assessmentForm
	Result    *response_models.AssessmentResponse
	Error     string
	Submitted bool
}

// Home renders the measurement form with the usual starting values.
func (p *PagesController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", homePageData{Form: defaultForm()})
}

// Assess scores a form submission and renders the result card next to the
// form. Errors stay on the page; the entered values are kept either way.
func (p *PagesController) Assess(c *gin.Context) {
	form := formFromPost(c)
	if form.hasEmptyField() {
		c.HTML(http.StatusBadRequest, "home.html", homePageData{
			Form:  form,
			Error: "Please fill in every field with a valid number.",
		})
		return
	}

	var req request_models.AssessmentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "home.html", homePageData{
			Form:  form,
			Error: "Please fill in every field with a valid number.",
		})
		return
	}

	result, err := p.assessmentService.Evaluate(c.Request.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Prediction failed: " + err.Error()
		if errors.Is(err, utils.ErrInvalidMeasurement) {
			status = http.StatusBadRequest
			msg = err.Error()
		}
		c.HTML(status, "home.html", homePageData{Form: form, Error: msg})
		return
	}

	c.HTML(http.StatusOK, "home.html", homePageData{
		Form:      form,
		Result:    result,
		Submitted: true,
	})
}
