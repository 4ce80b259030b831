package controllers

import (
	"net/http"
	"strconv"

	"github.com/justin-mavity/usermodel/apperrors"
	"github.com/justin-mavity/usermodel/auth"
	"github.com/justin-mavity/usermodel/models"
	"github.com/justin-mavity/usermodel/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// UserController maps the user routes onto the domain service.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterRoutes sets up the user routes on a go-restful WebService. All
// routes require a valid bearer token; mutations additionally require the
// admin role. The principal never reaches the domain service.
func (ctl *UserController) RegisterRoutes(ws *restful.WebService) {
	ws.Route(ws.GET("/users").Filter(auth.AuthFilter()).To(ctl.listUsersHandler).
		Doc("List all users").
		Metadata(restfulspec.KeyOpenAPITags, []string{"users"}).
		Writes([]models.User{}).
		Returns(http.StatusOK, "All users", []models.User{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.GET("/user/{user-id}").Filter(auth.AuthFilter()).To(ctl.getUserByIDHandler).
		Doc("Get user by ID").
		Param(ws.PathParameter("user-id", "Identifier of the user").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"users"}).
		Writes(models.User{}).
		Returns(http.StatusOK, "User found", models.User{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "User not found", nil))

	ws.Route(ws.GET("/user/name/{user-name}").Filter(auth.AuthFilter()).To(ctl.getUserByNameHandler).
		Doc("Get user by exact username").
		Param(ws.PathParameter("user-name", "Exact username of the user")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"users"}).
		Writes(models.User{}).
		Returns(http.StatusOK, "User found", models.User{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "User not found", nil))

	ws.Route(ws.GET("/user/name/like/{user-name}").Filter(auth.AuthFilter()).To(ctl.getUsersByNameLikeHandler).
		Doc("List users whose username contains the fragment, case-insensitively").
		Param(ws.PathParameter("user-name", "Username fragment")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"users"}).
		Writes([]models.User{}).
		Returns(http.StatusOK, "Matching users, possibly empty", []models.User{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.POST("/user").Filter(auth.AuthFilter()).Filter(auth.RequireRole("admin")).To(ctl.createUserHandler).
		Doc("Create a new user").
		Metadata(restfulspec.KeyOpenAPITags, []string{"users"}).
		Reads(services.CreateUserInput{}).
		Returns(http.StatusCreated, "User created successfully", models.User{}).
		Returns(http.StatusBadRequest, "Invalid request body", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusForbidden, "Forbidden", nil).
		Returns(http.StatusNotFound, "A referenced role id does not exist", nil).
		Returns(http.StatusConflict, "Username already exists", nil))

	ws.Route(ws.PUT("/user/{user-id}").Filter(auth.AuthFilter()).Filter(auth.RequireRole("admin")).To(ctl.updateUserHandler).
		Doc("Partially update a user; supplied fields overwrite, omitted fields stay").
		Param(ws.PathParameter("user-id", "Identifier of the user to update").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"users"}).
		Reads(services.UpdateUserInput{}).
		Writes(models.User{}).
		Returns(http.StatusOK, "User updated successfully", models.User{}).
		Returns(http.StatusBadRequest, "Invalid request body or user ID", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusForbidden, "Forbidden", nil).
		Returns(http.StatusNotFound, "User or a referenced role id not found", nil).
		Returns(http.StatusConflict, "Username already exists", nil))

	ws.Route(ws.DELETE("/user/{user-id}").Filter(auth.AuthFilter()).Filter(auth.RequireRole("admin")).To(ctl.deleteUserHandler).
		Doc("Delete a user and all of its role associations").
		Param(ws.PathParameter("user-id", "Identifier of the user to delete").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"users"}).
		Returns(http.StatusOK, "User deleted successfully", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusForbidden, "Forbidden", nil).
		Returns(http.StatusNotFound, "User not found", nil))
}

// --- go-restful Handler Functions ---

func (ctl *UserController) listUsersHandler(request *restful.Request, response *restful.Response) {
	users, err := ctl.userService.FindAll()
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, users, restful.MIME_JSON)
}

func (ctl *UserController) getUserByIDHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseUserID(request, response)
	if !ok {
		return
	}

	user, err := ctl.userService.FindUserByID(id)
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, user, restful.MIME_JSON)
}

func (ctl *UserController) getUserByNameHandler(request *restful.Request, response *restful.Response) {
	user, err := ctl.userService.FindByName(request.PathParameter("user-name"))
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, user, restful.MIME_JSON)
}

func (ctl *UserController) getUsersByNameLikeHandler(request *restful.Request, response *restful.Response) {
	users, err := ctl.userService.FindByNameContaining(request.PathParameter("user-name"))
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, users, restful.MIME_JSON)
}

func (ctl *UserController) createUserHandler(request *restful.Request, response *restful.Response) {
	input := new(services.CreateUserInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	if input.Username == "" || input.Credential == "" {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Username and credential are required"}, restful.MIME_JSON)
		return
	}

	user, err := ctl.userService.Save(input)
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusCreated, user, restful.MIME_JSON)
}

func (ctl *UserController) updateUserHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseUserID(request, response)
	if !ok {
		return
	}

	input := new(services.UpdateUserInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}

	// A supplied field always means "set this value"; username and credential
	// cannot be set to empty.
	if (input.Username != nil && *input.Username == "") ||
		(input.Credential != nil && *input.Credential == "") {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Username and credential cannot be empty"}, restful.MIME_JSON)
		return
	}

	user, err := ctl.userService.Update(id, input)
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, user, restful.MIME_JSON)
}

func (ctl *UserController) deleteUserHandler(request *restful.Request, response *restful.Response) {
	id, ok := parseUserID(request, response)
	if !ok {
		return
	}

	if err := ctl.userService.Delete(id); err != nil {
		handleServiceError(response, err)
		return
	}
	response.WriteHeader(http.StatusOK)
}

// --- Utility Functions ---

func parseUserID(request *restful.Request, response *restful.Response) (uint, bool) {
	id, err := strconv.ParseUint(request.PathParameter("user-id"), 10, 32)
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid user ID format"}, restful.MIME_JSON)
		return 0, false
	}
	return uint(id), true
}

// handleServiceError translates domain errors to HTTP responses. NotFound
// renders the generic "Resource not found" marker with the specific cause in
// the detail field.
func handleServiceError(response *restful.Response, err error) {
	switch {
	case apperrors.IsNotFound(err):
		_ = response.WriteHeaderAndJson(http.StatusNotFound,
			map[string]string{"message": "Resource not found", "detail": err.Error()}, restful.MIME_JSON)
	case apperrors.IsConflict(err):
		_ = response.WriteHeaderAndJson(http.StatusConflict,
			map[string]string{"message": err.Error()}, restful.MIME_JSON)
	default:
		_ = response.WriteHeaderAndJson(http.StatusInternalServerError,
			map[string]string{"message": "An internal error occurred"}, restful.MIME_JSON)
	}
}
