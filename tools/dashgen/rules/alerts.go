package rules

import "fmt"

// ebayDailyLimit mirrors the default ebay.rate_limit.daily_limit.
const ebayDailyLimit = 2_000_000

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// AlertRules returns the operational alerts for bluberry.
func AlertRules() PrometheusRule {
	return newRule("bluberry-alerts", RuleGroup{
		Name: "bluberry-alerts",
		Rules: []Rule{
			alert("BluberryDown",
				`absent(up{job="bluberry"})`, "2m", "critical",
				"BluBerry is down",
				"The bluberry job has been absent for more than 2 minutes."),
			alert("BluberryReadinessDown",
				`bluberry_readyz_up == 0`, "2m", "critical",
				"BluBerry readiness check is failing",
				"The database has been unreachable for more than 2 minutes."),
			alert("BluberryHighErrorRate",
				`bluberry:http_errors:rate5m / bluberry:http_requests:rate5m > 0.05`, "5m", "warning",
				"High HTTP error rate on BluBerry",
				"More than 5% of HTTP requests are returning 5xx errors."),
			alert("BluberryTokenRefreshFailing",
				`increase(bluberry_ebay_token_refreshes_total{result="failure"}[15m]) > 0`, "", "critical",
				"eBay token refresh is failing",
				"The stored refresh token was rejected or eBay is unreachable. Reconnect the seller account if this persists."),
			alert("BluberryListingAuthorizationErrors",
				`sum(increase(bluberry_listing_operations_total{result="authorization"}[15m])) > 0`, "", "warning",
				"Listings are failing authorization",
				"List or unlist calls returned an authorization error in the last 15 minutes."),
			alert("BluberryListingProviderErrors",
				`sum(bluberry:listing_operations:rate5m{result="provider"}) > 0`, "10m", "warning",
				"eBay is rejecting listing calls",
				"List or unlist calls have been failing with provider errors for 10 minutes."),
			alert("BluberryCircuitOpen",
				`max(bluberry_circuit_breaker_state) == 1`, "1m", "warning",
				"eBay circuit breaker is open",
				"Sell API calls are being short-circuited after repeated failures."),
			alert("BluberryEbayQuotaHigh",
				fmt.Sprintf(`bluberry_ebay_daily_usage > %d`, ebayDailyLimit*8/10), "5m", "warning",
				"eBay daily quota above 80%",
				"Sell API usage has exceeded 80% of the daily limit."),
			alert("BluberryEbayLimitReached",
				`increase(bluberry_ebay_daily_limit_hits_total[5m]) > 0`, "", "critical",
				"eBay daily limit reached",
				"Calls are being rejected until the quota resets at midnight UTC."),
			alert("BluberryNotificationFailures",
				`increase(bluberry_notification_failures_total[5m]) > 0`, "1m", "warning",
				"Listing notifications are failing",
				"Webhook deliveries have failed in the last 5 minutes."),
		},
	})
}
