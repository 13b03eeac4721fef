package cache

// Cart views are cached per (user, kind) and invalidated on every mutation.
const KeyCartItems = "carts:user_id:%s:kind:%s"
