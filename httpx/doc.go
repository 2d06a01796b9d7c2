/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx carries classified errors over HTTP.
//
// Writer renders an *apierr.Error as a google.rpc.Status JSON body with the
// HTTP status resolved by an apis.Mapper.
//
// Client performs a prepared request against a remote XML API and turns
// every failure into an *apierr.Error: transport errors, SOAP faults,
// bodies that are not XML and unexpected HTTP statuses. The request and
// response bodies are attached to the error.
package httpx
