// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/graphql"
	"github.com/jsamuelsen11/media-gateway/internal/ports"
)

// MediaResponse mirrors an AniList GraphQL reply. Data is copied through
// byte for byte.
type MediaResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is one GraphQL error reported by AniList.
type GraphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// ToMediaResponse converts a transport reply. A nil reply yields null data.
func ToMediaResponse(resp *graphql.Response) MediaResponse {
	if resp == nil {
		return MediaResponse{Data: json.RawMessage("null")}
	}
	data := resp.Data
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return MediaResponse{Data: data, Errors: toGraphQLErrors(resp.Errors)}
}

// OverviewResponse is the combined view of one media entry.
type OverviewResponse struct {
	MediaID int                      `json:"media_id"`
	Parts   map[string]MediaResponse `json:"parts"`
	Errors  []OverviewErrorResponse  `json:"errors,omitempty"`
}

// OverviewErrorResponse reports a section that failed, with the HTTP status
// it would have produced on its own.
type OverviewErrorResponse struct {
	Part   string `json:"part"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// ToOverviewResponse converts a service overview.
func ToOverviewResponse(o *ports.MediaOverview) OverviewResponse {
	resp := OverviewResponse{
		MediaID: o.MediaID,
		Parts:   make(map[string]MediaResponse, len(o.Parts)),
	}
	for part, r := range o.Parts {
		resp.Parts[string(part)] = ToMediaResponse(r)
	}
	for _, e := range o.Errors {
		resp.Errors = append(resp.Errors, OverviewErrorResponse{
			Part:   string(e.Part),
			Status: StatusOf(e.Err),
			Detail: e.Err.Error(),
		})
	}
	return resp
}

func toGraphQLErrors(errs []graphql.Error) []GraphQLError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]GraphQLError, len(errs))
	for i, e := range errs {
		out[i] = GraphQLError{Message: e.Message, Status: e.Status}
	}
	return out
}
