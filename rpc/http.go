package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dimfeld/httptreemux"
	"github.com/exactnum/fraction/config"
	"github.com/exactnum/fraction/logger"
	"github.com/gorilla/handlers"
	"github.com/unrolled/render"
)

type R struct {
	custom *config.Custom
}

type Call struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(custom *config.Custom) *httptreemux.TreeMux {
	router, impl := httptreemux.New(), &R{custom: custom}
	router.POST("/", impl.handle)
	registerHanders(router)
	return router
}

func NewServer(custom *config.Custom, port int) *http.Server {
	router := handleCORS(NewRouter(custom))
	handler := handlers.ProxyHeaders(router)
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

func registerHanders(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("rpc panic %v\n", rcv)
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": fmt.Sprint(rcv)})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(r.Body)
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	logger.Verbosef("rpc %s %v\n", call.Method, call.Params)
	switch call.Method {
	case "getinfo":
		info, err := getInfo(impl.custom)
		impl.renderData(w, info, err)
	case "evaluate":
		result, err := evaluateFraction(impl.custom, call.Params)
		impl.renderData(w, result, err)
	case "approximate":
		result, err := approximateFloat(impl.custom, call.Params)
		impl.renderData(w, result, err)
	case "inspect":
		result, err := inspectFraction(call.Params)
		impl.renderData(w, result, err)
	default:
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"error": "invalid method"})
	}
}

func (impl *R) renderData(w http.ResponseWriter, data interface{}, err error) {
	if err != nil {
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"error": err.Error()})
		return
	}
	render.New().JSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,GET,POST,DELETE")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}
