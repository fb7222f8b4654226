package endpoint

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/hamyaran/hamyar-api/middleware"
	"github.com/hamyaran/hamyar-api/util"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Patch fields that no resource may overwrite through the API.
var protectedPatchFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"deleted_at":    true,
	"account_id":    true,
	"password":      true,
	"password_salt": true,
	"national_code": true,
}

// requestError carries an HTTP-mappable failure out of create builders.
type requestError struct {
	status int
	msg    string
	errors map[string][]string
	err    error
}

func (e *requestError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *requestError) write(c *gin.Context) {
	switch e.status {
	case http.StatusBadRequest:
		if e.errors != nil {
			util.CallValidationError(c, e.msg, e.errors)
			return
		}
		util.CallUserError(c, util.APIErrorParams{Msg: e.msg, Err: e.err})
	case http.StatusNotFound:
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: e.msg, Err: e.err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: e.msg, Err: e.err})
	}
}

func validationFailure(msg string, errors map[string][]string) *requestError {
	return &requestError{status: http.StatusBadRequest, msg: msg, errors: errors, err: fmt.Errorf("validation failed")}
}

func userFailure(msg string, err error) *requestError {
	return &requestError{status: http.StatusBadRequest, msg: msg, err: err}
}

func notFoundFailure(msg string) *requestError {
	return &requestError{status: http.StatusNotFound, msg: msg, err: gorm.ErrRecordNotFound}
}

func serverFailure(msg string, err error) *requestError {
	return &requestError{status: http.StatusInternalServerError, msg: msg, err: err}
}

// resource is a generic CRUD controller over one entity type. Every
// collection endpoint shares the same list/retrieve/create/update/delete
// semantics and envelope; the per-entity parts (search columns, create
// builder, patch validation) are configuration.
type resource[T any] struct {
	// singular noun used in response messages, e.g. "service center".
	singular string
	// searchCols are LIKE-matched against the list `search` parameter.
	searchCols []string
	// searchJoin is an optional JOIN applied while searching, for resources
	// whose search columns live on a related table. searchSelect keeps the
	// selected columns unambiguous under that join.
	searchJoin   string
	searchSelect string
	// order is the list ordering; defaults to newest first.
	order string
	// preloads are gorm associations loaded on reads.
	preloads []string
	// buildCreate assembles a validated row from the request. Required.
	buildCreate func(c *gin.Context, db *gorm.DB) (*T, *requestError)
	// validatePatch re-validates supplied update fields (enums and the like).
	validatePatch func(patch map[string]interface{}) map[string][]string
	// createFailMsg overrides the storage-failure message on create, used to
	// surface documented partial states to the caller.
	createFailMsg string
}

func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return db, true
}

func parsePageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.Query("page_size"))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// List returns one page of records with the pagination block. `search` is
// LIKE-matched over the resource's declared columns.
func (r resource[T]) List(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	page, pageSize := parsePageParams(c)

	query := db.Model(new(T))
	joined := false
	if search := strings.TrimSpace(c.Query("search")); search != "" && len(r.searchCols) > 0 {
		if r.searchJoin != "" {
			query = query.Joins(r.searchJoin)
			joined = true
		}
		kw := "%" + search + "%"
		conds := make([]string, 0, len(r.searchCols))
		args := make([]interface{}, 0, len(r.searchCols))
		for _, col := range r.searchCols {
			conds = append(conds, col+" LIKE ?")
			args = append(args, kw)
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to count " + r.singular + " records",
			Err: err,
		})
		return
	}

	// The select narrows a joined row fetch to this table's columns; applying
	// it before Count would turn into COUNT(table.*), which is not valid SQL.
	if joined && r.searchSelect != "" {
		query = query.Select(r.searchSelect)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	for _, p := range r.preloads {
		query = query.Preload(p)
	}

	order := r.order
	if order == "" {
		order = "created_at DESC"
	}

	var rows []T
	if err := query.Order(order).Limit(pageSize).Offset((page - 1) * pageSize).Find(&rows).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve " + r.singular + " records",
			Err: err,
		})
		return
	}

	util.CallSuccessList(c, rows, util.Pagination{
		TotalCount:  total,
		PageSize:    pageSize,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

// Retrieve returns a single record by identifier.
func (r resource[T]) Retrieve(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	row, found := r.firstByID(c, db)
	if !found {
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  capitalize(r.singular) + " retrieved",
		Data: row,
	})
}

// Create validates and stores a new record. Validation failures never touch
// storage.
func (r resource[T]) Create(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	row, reqErr := r.buildCreate(c, db)
	if reqErr != nil {
		reqErr.write(c)
		return
	}

	if err := db.Omit(clause.Associations).Create(row).Error; err != nil {
		msg := r.createFailMsg
		if msg == "" {
			msg = "Failed to create " + r.singular
		}
		util.CallServerError(c, util.APIErrorParams{Msg: msg, Err: err})
		return
	}

	r.reload(db, row)

	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  capitalize(r.singular) + " created",
		Data: row,
	})
}

// Update applies a partial field replacement. Only supplied fields are
// touched and re-validated; identifiers and ownership columns are protected.
func (r resource[T]) Update(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	row, found := r.firstByID(c, db)
	if !found {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	filtered, err := r.filterPatch(db, patch)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to resolve updatable fields", Err: err})
		return
	}
	if len(filtered) == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No updatable fields supplied",
			Err: fmt.Errorf("empty patch"),
		})
		return
	}

	if r.validatePatch != nil {
		if errs := r.validatePatch(filtered); len(errs) > 0 {
			util.CallValidationError(c, "Validation failed", errs)
			return
		}
	}

	if err := db.Model(row).Updates(filtered).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update " + r.singular, Err: err})
		return
	}

	r.reload(db, row)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  capitalize(r.singular) + " updated",
		Data: row,
	})
}

// Delete removes a record by identifier. A missing identifier is a not-found
// failure, never a server fault.
func (r resource[T]) Delete(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	row, found := r.firstByID(c, db)
	if !found {
		return
	}

	if err := db.Delete(row).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete " + r.singular, Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: capitalize(r.singular) + " deleted",
	})
}

func (r resource[T]) firstByID(c *gin.Context, db *gorm.DB) (*T, bool) {
	id := c.Param("id")
	if id == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Missing " + r.singular + " ID",
			Err: fmt.Errorf("%s ID is required", r.singular),
		})
		return nil, false
	}

	query := db
	for _, p := range r.preloads {
		query = query.Preload(p)
	}

	row := new(T)
	if err := query.First(row, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{
				Msg: capitalize(r.singular) + " not found",
				Err: err,
			})
		} else {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Failed to retrieve " + r.singular,
				Err: err,
			})
		}
		return nil, false
	}

	return row, true
}

// reload refreshes row from storage, picking up column defaults and
// preloaded associations. Best-effort; the created/updated row is already a
// valid response on its own.
func (r resource[T]) reload(db *gorm.DB, row *T) {
	id, ok := rowID(row)
	if !ok {
		return
	}
	query := db
	for _, p := range r.preloads {
		query = query.Preload(p)
	}
	_ = query.First(row, "id = ?", id).Error
}

// rowID pulls the primary key out of a gorm.Model-embedding row.
func rowID(row interface{}) (uint, bool) {
	field := reflect.ValueOf(row).Elem().FieldByName("ID")
	if !field.IsValid() {
		return 0, false
	}
	id, ok := field.Interface().(uint)
	return id, ok && id != 0
}

var schemaCache = &sync.Map{}

// filterPatch keeps only patch keys that are real, unprotected columns of T.
func (r resource[T]) filterPatch(db *gorm.DB, patch map[string]interface{}) (map[string]interface{}, error) {
	s, err := schema.Parse(new(T), schemaCache, db.NamingStrategy)
	if err != nil {
		return nil, err
	}

	columns := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.DBName != "" {
			columns[f.DBName] = true
		}
	}

	filtered := make(map[string]interface{}, len(patch))
	for key, value := range patch {
		if !columns[key] || protectedPatchFields[key] {
			continue
		}
		filtered[key] = value
	}
	return filtered, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
