package controllers

import (
	"net/http"
	"strconv"

	"github.com/justin-mavity/usermodel/auth"
	"github.com/justin-mavity/usermodel/models"
	"github.com/justin-mavity/usermodel/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
)

// RoleController maps the read-mostly role routes onto the role service.
type RoleController struct {
	roleService services.RoleService
}

// NewRoleController creates a new RoleController instance
func NewRoleController(roleService services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// CreateRoleInput is the payload for creating a role.
type CreateRoleInput struct {
	Name string `json:"name"`
}

// RegisterRoutes sets up the role routes on a go-restful WebService.
func (ctl *RoleController) RegisterRoutes(ws *restful.WebService) {
	ws.Route(ws.GET("/roles").Filter(auth.AuthFilter()).To(ctl.listRolesHandler).
		Doc("List all roles").
		Metadata(restfulspec.KeyOpenAPITags, []string{"roles"}).
		Writes([]models.Role{}).
		Returns(http.StatusOK, "All roles", []models.Role{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil))

	ws.Route(ws.GET("/role/{role-id}").Filter(auth.AuthFilter()).To(ctl.getRoleByIDHandler).
		Doc("Get role by ID").
		Param(ws.PathParameter("role-id", "Identifier of the role").DataType("integer")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"roles"}).
		Writes(models.Role{}).
		Returns(http.StatusOK, "Role found", models.Role{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Role not found", nil))

	ws.Route(ws.GET("/role/name/{role-name}").Filter(auth.AuthFilter()).To(ctl.getRoleByNameHandler).
		Doc("Get role by name, case-insensitively").
		Param(ws.PathParameter("role-name", "Name of the role")).
		Metadata(restfulspec.KeyOpenAPITags, []string{"roles"}).
		Writes(models.Role{}).
		Returns(http.StatusOK, "Role found", models.Role{}).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusNotFound, "Role not found", nil))

	ws.Route(ws.POST("/role").Filter(auth.AuthFilter()).Filter(auth.RequireRole("admin")).To(ctl.createRoleHandler).
		Doc("Create a new role").
		Metadata(restfulspec.KeyOpenAPITags, []string{"roles"}).
		Reads(CreateRoleInput{}).
		Returns(http.StatusCreated, "Role created successfully", models.Role{}).
		Returns(http.StatusBadRequest, "Invalid request body", nil).
		Returns(http.StatusUnauthorized, "Unauthorized", nil).
		Returns(http.StatusForbidden, "Forbidden", nil).
		Returns(http.StatusConflict, "Role name already exists", nil))
}

func (ctl *RoleController) listRolesHandler(request *restful.Request, response *restful.Response) {
	roles, err := ctl.roleService.FindAll()
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, roles, restful.MIME_JSON)
}

func (ctl *RoleController) getRoleByIDHandler(request *restful.Request, response *restful.Response) {
	id, err := strconv.ParseUint(request.PathParameter("role-id"), 10, 32)
	if err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid role ID format"}, restful.MIME_JSON)
		return
	}

	role, err := ctl.roleService.FindRoleByID(uint(id))
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, role, restful.MIME_JSON)
}

func (ctl *RoleController) getRoleByNameHandler(request *restful.Request, response *restful.Response) {
	role, err := ctl.roleService.FindByName(request.PathParameter("role-name"))
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusOK, role, restful.MIME_JSON)
}

func (ctl *RoleController) createRoleHandler(request *restful.Request, response *restful.Response) {
	input := new(CreateRoleInput)
	if err := request.ReadEntity(input); err != nil {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Invalid request body: " + err.Error()}, restful.MIME_JSON)
		return
	}
	if input.Name == "" {
		_ = response.WriteHeaderAndJson(http.StatusBadRequest, map[string]string{"message": "Role name is required"}, restful.MIME_JSON)
		return
	}

	role, err := ctl.roleService.Save(input.Name)
	if err != nil {
		handleServiceError(response, err)
		return
	}
	_ = response.WriteHeaderAndJson(http.StatusCreated, role, restful.MIME_JSON)
}
