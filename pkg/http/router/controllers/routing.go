package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine/routing"
	helper "github.com/lockcole/OpenLevelUp-sub000/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	validate       *validator.Validate
	trans          ut.Translator
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return &routingAPI{
		routingService: routingService,
		validate:       validate,
		trans:          trans,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.shortestPath)
	group.GET("/levels", api.levels)
	group.GET("/graph", api.graphStats)
}

func parseFloatParam(query map[string][]string, name string) (float64, error) {
	values := query[name]
	if len(values) == 0 {
		return 0, fmt.Errorf("%s is required and must be a valid float", name)
	}
	v, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%s is required and must be a valid float", name)
	}
	return v, nil
}

// shortestPath
//
//	@Summary		shortest indoor route between two points, each on its own level
//	@Tags			routing
//	@Param			start_lat	query	number	true	"start latitude"
//	@Param			start_lon	query	number	true	"start longitude"
//	@Param			start_level	query	number	true	"start level"
//	@Param			end_lat		query	number	true	"end latitude"
//	@Param			end_lon		query	number	true	"end longitude"
//	@Param			end_level	query	number	true	"end level"
//	@Param			avoid		query	string	false	"comma separated transition kinds: stairs, escalator, elevator"
//	@Param			normalize	query	bool	false	"collapse nodes inside areas"
//	@Produce		json
//	@Success		200	{object}	shortestPathResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Router			/computeRoutes [get]
func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request shortestPathRequest
		err     error
	)

	query := r.URL.Query()
	params := []struct {
		name string
		dst  *float64
	}{
		{"start_lat", &request.StartLat},
		{"start_lon", &request.StartLon},
		{"start_level", &request.StartLevel},
		{"end_lat", &request.EndLat},
		{"end_lon", &request.EndLon},
		{"end_level", &request.EndLevel},
	}
	for _, param := range params {
		*param.dst, err = parseFloatParam(query, param.name)
		if err != nil {
			api.BadRequestResponse(w, r, err)
			return
		}
	}
	request.Avoid = query.Get("avoid")
	if v := query.Get("normalize"); v != "" {
		request.Normalize, err = strconv.ParseBool(v)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("normalize must be a boolean"))
			return
		}
	}

	if err := api.validate.Struct(request); err != nil {
		api.BadRequestResponse(w, r, api.validationError(err))
		return
	}

	avoid, err := da.ParseAvoidSet(request.Avoid)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	q := routing.NewQuery(da.NewCoordinate(request.StartLat, request.StartLon), request.StartLevel,
		da.NewCoordinate(request.EndLat, request.EndLon), request.EndLevel)
	q.Normalize = request.Normalize

	route, err := api.routingService.ShortestPath(engine.RouteRequest{Query: q, Avoid: avoid})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewShortestPathResponse(route)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// levels
//
//	@Summary	every level present in the loaded data
//	@Tags		routing
//	@Produce	json
//	@Success	200	{object}	levelsResponse
//	@Router		/levels [get]
func (api *routingAPI) levels(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": levelsResponse{Levels: api.routingService.Levels()}},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// graphStats
//
//	@Summary	size of the routing graph built for an avoidance policy
//	@Tags		routing
//	@Param		avoid	query	string	false	"comma separated transition kinds"
//	@Produce	json
//	@Success	200	{object}	graphStatsResponse
//	@Failure	400	{object}	errorResponse
//	@Router		/graph [get]
func (api *routingAPI) graphStats(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	avoid, err := da.ParseAvoidSet(r.URL.Query().Get("avoid"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	stats, err := api.routingService.GraphStats(avoid)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewGraphStatsResponse(avoid.String(), stats)},
		nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
