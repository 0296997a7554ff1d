package storefront

import "encoding/json"

// graphqlRequest is the POST body for every upstream call.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// envelope is the standard GraphQL response wrapper.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors GraphQLErrors   `json:"errors,omitempty"`
}

// connection is a cursor-paginated GraphQL connection of T nodes.
type connection[T any] struct {
	Edges    []edge[T] `json:"edges"`
	PageInfo pageInfo  `json:"pageInfo"`
}

type edge[T any] struct {
	Node T `json:"node"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type moneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type imageNode struct {
	URL    string `json:"url"`
	Alt    string `json:"altText"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type videoSourceNode struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// mediaNode flattens the media union; only the fields matching __typename
// are populated by the upstream.
type mediaNode struct {
	TypeName     string            `json:"__typename"`
	Alt          string            `json:"alt"`
	Image        imageNode         `json:"image"`
	PreviewImage imageNode         `json:"previewImage"`
	Sources      []videoSourceNode `json:"sources"`
	Host         string            `json:"host"`
	OriginURL    string            `json:"originUrl"`
	EmbedURL     string            `json:"embedUrl"`
}

type selectedOptionNode struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type variantNode struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	AvailableForSale bool                 `json:"availableForSale"`
	Price            moneyV2              `json:"price"`
	SelectedOptions  []selectedOptionNode `json:"selectedOptions"`
}

type productNode struct {
	ID          string   `json:"id"`
	Handle      string   `json:"handle"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	PriceRange  struct {
		MinVariantPrice moneyV2 `json:"minVariantPrice"`
	} `json:"priceRange"`
	Media    connection[mediaNode]   `json:"media"`
	Variants connection[variantNode] `json:"variants"`
}

type collectionNode struct {
	ID          string                  `json:"id"`
	Handle      string                  `json:"handle"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Products    connection[productNode] `json:"products"`
}
