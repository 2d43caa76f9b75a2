package endpoints

import (
	"github.com/workdeck/workdeck/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterWorkspacesEndpoints(srv)
	RegisterCollectionsEndpoints(srv)
	RegisterAccessEndpoints(srv)
	RegisterDocumentsEndpoints(srv)
	RegisterPromptsEndpoints(srv)
	RegisterDatasetsEndpoints(srv)
	RegisterUsersEndpoints(srv)
}
