package hardcover

// The three query templates sent to the Hardcover GraphQL endpoint. The
// search results field is intentionally untyped on their side, which is why
// everything below data.search.results goes through Document.

const searchQuery = `
query Search($query: String!, $queryType: String, $perPage: Int!, $page: Int!) {
  search(query: $query, query_type: $queryType, per_page: $perPage, page: $page) {
    error
    results
  }
}
`

const authorMetaQuery = `
query AuthorMeta($slug: String!) {
  authors(where: { slug: { _eq: $slug } }, limit: 1) {
    id
    name
    slug
    bio
    books_count
    born_year
    death_year
    image {
      url
    }
  }
  editions(
    distinct_on: language_id
    where: {
      book: { contributions: { author: { slug: { _eq: $slug } } } }
      language_id: { _is_null: false }
    }
    order_by: [{ language_id: asc }, { id: asc }]
  ) {
    language {
      code2
      code3
      language
    }
  }
}
`

const authorBooksPageQuery = `
query AuthorBooksPage($slug: String!, $limit: Int!, $offset: Int!) {
  books_aggregate(where: { contributions: { author: { slug: { _eq: $slug } } } }) {
    aggregate {
      count
    }
  }
  books(
    where: { contributions: { author: { slug: { _eq: $slug } } } }
    limit: $limit
    offset: $offset
    order_by: [{ release_year: desc_nulls_last }, { id: desc }]
  ) {
    id
    title
    slug
    release_date
    release_year
    rating
    image {
      url
    }
    contributions(
      where: { author: { slug: { _eq: $slug } } }
      limit: 1
    ) {
      contribution
    }
    editions(
      limit: 1
      where: { language: { code2: { _is_null: false } } }
      order_by: [{ id: asc }]
    ) {
      language {
        code2
        code3
        language
      }
    }
  }
}
`

const authorBooksPageByLanguageQuery = `
query AuthorBooksPageByLanguage(
  $slug: String!
  $limit: Int!
  $offset: Int!
  $languageCode: String!
) {
  books_aggregate(
    where: {
      contributions: { author: { slug: { _eq: $slug } } }
      editions: { language: { code2: { _eq: $languageCode } } }
    }
  ) {
    aggregate {
      count
    }
  }
  books(
    where: {
      contributions: { author: { slug: { _eq: $slug } } }
      editions: { language: { code2: { _eq: $languageCode } } }
    }
    limit: $limit
    offset: $offset
    order_by: [{ release_year: desc_nulls_last }, { id: desc }]
  ) {
    id
    title
    slug
    release_date
    release_year
    rating
    image {
      url
    }
    contributions(
      where: { author: { slug: { _eq: $slug } } }
      limit: 1
    ) {
      contribution
    }
    editions(
      limit: 1
      where: { language: { code2: { _eq: $languageCode } } }
      order_by: [{ id: asc }]
    ) {
      language {
        code2
        code3
        language
      }
    }
  }
}
`
