package storefront

// Queries are fixed documents parameterized only through GraphQL variables.

const productFragment = `
fragment ProductFields on Product {
  id
  handle
  title
  description
  tags
  priceRange {
    minVariantPrice { amount currencyCode }
  }
  media(first: 10) {
    edges {
      node {
        __typename
        alt
        ... on MediaImage { image { url altText width height } }
        ... on Video { sources { url mimeType width height } previewImage { url } }
        ... on ExternalVideo { host originUrl embedUrl }
      }
    }
  }
  variants(first: 10) {
    edges {
      node {
        id
        title
        availableForSale
        price { amount currencyCode }
        selectedOptions { name value }
      }
    }
  }
}`

const queryProductsPage = `
query ProductsPage($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    edges { node { ...ProductFields } }
    pageInfo { hasNextPage endCursor }
  }
}` + productFragment

const queryProductByHandle = `
query ProductByHandle($handle: String!) {
  product(handle: $handle) { ...ProductFields }
}` + productFragment

const queryCollections = `
query Collections($first: Int!, $productsFirst: Int!) {
  collections(first: $first) {
    edges {
      node {
        id
        handle
        title
        description
        products(first: $productsFirst) {
          edges { node { ...ProductFields } }
          pageInfo { hasNextPage endCursor }
        }
      }
    }
    pageInfo { hasNextPage endCursor }
  }
}` + productFragment

const queryCollectionProducts = `
query CollectionProducts($handle: String!, $first: Int!, $after: String) {
  collection(handle: $handle) {
    id
    handle
    title
    description
    products(first: $first, after: $after) {
      edges { node { ...ProductFields } }
      pageInfo { hasNextPage endCursor }
    }
  }
}` + productFragment

const queryProductVariants = `
query ProductVariants($id: ID!) {
  node(id: $id) {
    ... on Product {
      title
      variants(first: 20) {
        edges {
          node {
            id
            title
            availableForSale
            price { amount currencyCode }
            selectedOptions { name value }
          }
        }
      }
    }
  }
}`

const queryCart = `
query Cart($id: ID!) {
  cart(id: $id) { id }
}`

const queryShop = `
query Shop {
  shop { name }
}`

const mutationCheckoutCreate = `
mutation CheckoutCreate($input: CheckoutCreateInput!) {
  checkoutCreate(input: $input) {
    checkout { id webUrl }
    checkoutUserErrors { field message }
  }
}`

const mutationContactSubmit = `
mutation ContactSubmit($input: ContactSubmissionInput!) {
  contactSubmit(input: $input) {
    userErrors { field message }
  }
}`
