package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clinware/formassist/form"
	"github.com/clinware/formassist/models"
	"github.com/clinware/formassist/utils"
)

// FormController exposes the form assistant to the consultation report page:
// per-field validation, counters, logo screening, formatting shortcuts, and
// the transient notice slot.
type FormController struct {
	assistant *form.Assistant
}

// NewFormController creates a new FormController instance.
func NewFormController(assistant *form.Assistant) *FormController {
	return &FormController{assistant: assistant}
}

// ValidateField handles blur-time validation of a single field.
func (f *FormController) ValidateField(ctx *gin.Context) {
	var req struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	res, err := f.assistant.ValidateField(req.Field, req.Value)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, err.Error())
		return
	}

	payload := gin.H{"valid": res.Valid, "errors": res.Errors}
	if spec, ok := f.assistant.Field(req.Field); ok && spec.Kind == form.FieldDate && res.Valid {
		if age, ok := f.assistant.AgeOf(req.Value); ok {
			payload["age"] = age
		}
	}
	utils.Success(ctx, payload)
}

// ValidateReport validates the whole report payload in one pass. The submit
// guard keeps concurrent passes single-flight and re-enables the control via
// its safety timer if the pass never finishes.
func (f *FormController) ValidateReport(ctx *gin.Context) {
	var req models.Report
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40012, "invalid request payload")
		return
	}

	guard := f.assistant.Submit()
	if !guard.Begin() {
		utils.Error(ctx, http.StatusConflict, 40910, "a submission is already being validated")
		return
	}
	defer guard.Finish()

	fieldErrors, ok := f.assistant.ValidateAll(req.Values())
	payload := gin.H{"valid": ok, "errors": fieldErrors}
	if ok {
		// The preview is rendered as markup, so it gets the sanitized copy;
		// the editable fields keep whatever the user typed.
		payload["report"] = req.Sanitized(utils.Sanitize)
		if name, err := req.PDFFileName(); err == nil {
			payload["pdf_filename"] = name
		}
	}
	utils.Success(ctx, payload)
}

// LimitField recomputes the counter for a limited textarea and hard-truncates
// over-long input, raising the one-shot limit notice.
func (f *FormController) LimitField(ctx *gin.Context) {
	var req struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40013, "invalid request payload")
		return
	}

	limiter, ok := f.assistant.Limiter(req.Field)
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40014, fmt.Sprintf("field %q has no character limit", req.Field))
		return
	}

	// The value round-trips back into the textarea, so it must come back
	// byte-for-byte when under the limit; sanitization happens on rendered
	// surfaces, not here.
	value, counter, truncated := limiter.Apply(req.Value)
	payload := gin.H{"value": value, "counter": counter, "truncated": truncated}
	if truncated {
		spec, _ := f.assistant.Field(req.Field)
		notice := f.assistant.Notifier().Notify(form.NoticeWarning,
			fmt.Sprintf("%s is limited to %d characters.", form.CaptionLabel(spec.Caption), limiter.Limit()))
		payload["notice"] = notice
	}
	utils.Success(ctx, payload)
}

// FormatText applies a bold/italic marker pair to the selected span and
// returns the spliced text, the new selection, and a fresh counter so the
// page recomputes its count. An empty selection raises an info notice and
// mutates nothing.
func (f *FormController) FormatText(ctx *gin.Context) {
	var req struct {
		Field string `json:"field" binding:"required"`
		Text  string `json:"text"`
		Start int    `json:"start"`
		End   int    `json:"end"`
		Kind  string `json:"kind" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40015, "invalid request payload")
		return
	}

	sel := form.Selection{Start: req.Start, End: req.End}
	text, newSel, err := form.FormatSelection(req.Text, sel, form.FormatKind(req.Kind))
	payload := gin.H{
		"text":      text,
		"selection": newSel,
		"formatted": err == nil && text != req.Text,
	}
	if errors.Is(err, form.ErrEmptySelection) {
		payload["notice"] = f.assistant.Notifier().Notify(form.NoticeInfo, err.Error())
	}
	if limiter, ok := f.assistant.Limiter(req.Field); ok {
		payload["counter"] = limiter.Count(text)
	}
	utils.Success(ctx, payload)
}

// UploadLogo screens a logo file selection and returns an inline preview.
// Nothing is written to disk; the file exists only for the duration of the
// request.
func (f *FormController) UploadLogo(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("logo")
	if err != nil {
		// Accept the generic field name too
		file, header, err = ctx.Request.FormFile("file")
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40030, "no file uploaded")
			return
		}
	}
	defer file.Close()

	guard := f.assistant.Logo()
	if header.Size > 0 && header.Size > guard.MaxBytes() {
		f.assistant.Notifier().Notify(form.NoticeError, form.ErrLogoTooLarge.Error())
		utils.Error(ctx, http.StatusBadRequest, 40031, form.ErrLogoTooLarge.Error())
		return
	}

	// Read into memory with a hard cap one byte above the ceiling so
	// understated Content-Length headers still get caught by the guard.
	data, err := io.ReadAll(io.LimitReader(file, guard.MaxBytes()+1))
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to read uploaded file")
		return
	}

	seq := guard.Select()
	preview, err := guard.Decode(seq, data)
	if err != nil {
		f.assistant.Notifier().Notify(form.NoticeError, err.Error())
		utils.Error(ctx, http.StatusBadRequest, 40031, err.Error())
		return
	}
	if preview == nil {
		// A newer selection superseded this one mid-decode.
		utils.Error(ctx, http.StatusConflict, 40920, "file selection superseded by a newer one")
		return
	}
	utils.Success(ctx, gin.H{
		"preview":       preview.DataURL,
		"mime":          preview.MIME,
		"size":          preview.Size,
		"seq":           preview.Seq,
		"original_name": strings.TrimSpace(header.Filename),
	})
}

// GetNotice returns the currently visible transient notice, if any.
func (f *FormController) GetNotice(ctx *gin.Context) {
	if notice, ok := f.assistant.Notifier().Current(); ok {
		utils.Success(ctx, gin.H{"notice": notice})
		return
	}
	utils.Success(ctx, gin.H{"notice": nil})
}
