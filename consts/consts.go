package consts

const (
	// DEFAULT_PAGE_SIZE is the number of results per page when `paging.page_size` is not configured
	DEFAULT_PAGE_SIZE = 50

	// MAX_SERVICES_PER_ENTITY bounds the services a ticket or a profile is bound to
	MAX_SERVICES_PER_ENTITY = 100

	DEFAULT_ALLOWED_ORIGIN = "http://localhost:3000"
)
